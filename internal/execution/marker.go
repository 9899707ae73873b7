package execution

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kazz187/aisa/internal/task"
)

// ReadMarkerFile reads a result marker. found is false while the runner has
// not finished. Content other than succeeded/failed is an error.
func ReadMarkerFile(path string) (status task.Status, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read result marker: %w", err)
	}
	content := strings.TrimSpace(string(data))
	s, ok := task.ParseMarker(content)
	if !ok {
		return "", true, fmt.Errorf("unknown result marker content %q", content)
	}
	return s, true, nil
}
