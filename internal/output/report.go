package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vecalc/vector-calculator/internal/domain"
)

// GenerateReport resolves a formatter by name and emits the report.
// Console formats go to stdout; file formats are written to a
// timestamped file whose name is echoed.
func GenerateReport(results *domain.BatchResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	if strings.HasPrefix(f.Name(), "console") {
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	ext := f.Name()
	filename, err := WriteFormatted(f, results, ext)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}

// SaveConfiguration writes a configuration to a YAML file.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
