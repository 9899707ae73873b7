package codegen

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kazz187/aisa/internal/task"
)

type platformProfile struct {
	framework string
	setup     string
	anchor    string
	manifest  []string
}

var profiles = map[task.Platform]platformProfile{
	task.PlatformMobile: {
		framework: "Appium",
		setup:     mobileSetupTemplate,
		anchor:    mobileAnchor,
		manifest:  []string{"Appium-Python-Client==3.6.0", "selenium==4.22.0"},
	},
	task.PlatformWeb: {
		framework: "Playwright",
		setup:     webSetupTemplate,
		anchor:    webAnchor,
		manifest:  []string{"playwright==1.45.0"},
	},
}

func profileFor(p task.Platform) platformProfile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[task.PlatformWeb]
}

// importPackages maps top-level Python modules to the distribution that
// provides them. Modules not listed are either stdlib or already covered by
// the platform manifest.
var importPackages = map[string]string{
	"faker":    "Faker",
	"requests": "requests",
	"bs4":      "beautifulsoup4",
	"dotenv":   "python-dotenv",
	"yaml":     "PyYAML",
	"PIL":      "Pillow",
	"pandas":   "pandas",
	"numpy":    "numpy",
	"pytest":   "pytest",
}

var importPattern = regexp.MustCompile(`(?m)^\s*(?:from\s+([A-Za-z_]\w*)|import\s+([A-Za-z_]\w*))`)

// InferPackages lists the extra distributions a script imports.
func InferPackages(script string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range importPattern.FindAllStringSubmatch(script, -1) {
		mod := m[1]
		if mod == "" {
			mod = m[2]
		}
		pkg, ok := importPackages[mod]
		if !ok {
			continue
		}
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}

// buildManifest joins the base manifest with extra specifiers, one per line.
// An extra that names a package already present in the base is dropped.
func buildManifest(base []string, extra []string) string {
	lines := append([]string(nil), base...)
	have := map[string]struct{}{}
	for _, l := range base {
		have[packageName(l)] = struct{}{}
	}
	for _, e := range extra {
		e = strings.TrimSpace(e)
		if e == "" || strings.HasPrefix(e, "#") {
			continue
		}
		name := packageName(e)
		if _, ok := have[name]; ok {
			continue
		}
		have[name] = struct{}{}
		lines = append(lines, e)
	}
	return strings.Join(lines, "\n") + "\n"
}

func packageName(spec string) string {
	end := strings.IndexAny(spec, "=<>!~[; ")
	if end == -1 {
		end = len(spec)
	}
	return strings.ToLower(strings.ReplaceAll(spec[:end], "_", "-"))
}
