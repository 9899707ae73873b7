package codegen

import (
	"errors"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)[ \t]*\r?\n(.*?)```")

var errNoCodeBlock = errors.New("no code block found in response")

// ExtractCode returns the first fenced code block of text. A block tagged
// python wins over an earlier untagged one.
func ExtractCode(text string) (string, error) {
	matches := fencePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", errNoCodeBlock
	}
	chosen := matches[0][2]
	for _, m := range matches {
		lang := strings.ToLower(m[1])
		if lang == "python" || lang == "py" || lang == "python3" {
			chosen = m[2]
			break
		}
	}
	code := strings.TrimSpace(chosen)
	if code == "" {
		return "", errors.New("code block is empty")
	}
	return code + "\n", nil
}

// ensureSetup prepends the setup snippet when the script does not define the
// snippet's entry point itself.
func ensureSetup(script string, p platformProfile) string {
	if strings.Contains(script, p.anchor) {
		return script
	}
	return strings.TrimLeft(p.setup, "\n") + "\n" + script
}
