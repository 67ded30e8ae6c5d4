package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// envFiles are read from the definition's directory, in order.
var envFiles = []string{".env", ".env.local"}

// readEnvFiles parses .env/.env.local next to the definition. An earlier file
// wins over a later one. The process environment is left untouched.
func readEnvFiles(fs afero.Fs, dir string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		f, err := fs.Open(p)
		if err != nil {
			continue
		}
		parsed, perr := godotenv.Parse(f)
		_ = f.Close()
		if perr != nil {
			return vars, perr
		}
		for k, v := range parsed {
			if _, seen := vars[k]; !seen {
				vars[k] = v
			}
		}
		slog.Debug("Read environment file", logfields.File(p), logfields.Count(len(parsed)))
	}
	return vars, nil
}

var envReference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references. The process environment wins over
// files; unset variables expand to "". A bare $ is left as written.
func expandEnv(data string, files map[string]string) string {
	return envReference.ReplaceAllStringFunc(data, func(ref string) string {
		name := ref[2 : len(ref)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return files[name]
	})
}
