package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Encoding contains settings for the probe and encode tools.
type Encoding struct {
	FFmpegBinary     string `toml:"ffmpeg_binary"`
	FFprobeBinary    string `toml:"ffprobe_binary"`
	AudioCodec       string `toml:"audio_codec" validate:"required,oneof=aac libfdk_aac aac_at"`
	BitrateKbps      int    `toml:"bitrate_kbps" validate:"gte=0,lte=512"`
	Extension        string `toml:"extension" validate:"required,startswith=."`
	ProbeConcurrency int    `toml:"probe_concurrency" validate:"gte=1,lte=64"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" validate:"oneof=console json"`
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
}

// Config encapsulates all configuration values for bookbinder.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Encoding Encoding `toml:"encoding"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/bookbinder/config.toml")
}

// Load resolves, decodes, normalizes and validates the configuration. An
// explicit path wins; otherwise the per-user file and then ./bookbinder.toml
// are tried. When no file exists the defaults are returned with exists=false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	resolved, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	loaded := Default()
	if exists {
		if err := decodeFile(resolved, &loaded); err != nil {
			return nil, "", false, err
		}
	}
	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolved, exists, nil
}

func decodeFile(path string, into *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()
	if err := toml.NewDecoder(file).Decode(into); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		switch _, err := os.Stat(expanded); {
		case err == nil:
			return expanded, true, nil
		case errors.Is(err, fs.ErrNotExist):
			return expanded, false, nil
		default:
			return "", false, fmt.Errorf("stat config: %w", err)
		}
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("bookbinder.toml")
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

// EnsureDirectories creates the log directory when one is configured. The
// output directory is created by the assembly pipeline itself.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// FFmpegBinary returns the ffmpeg executable used for encoding.
func (c *Config) FFmpegBinary() string {
	if c == nil || strings.TrimSpace(c.Encoding.FFmpegBinary) == "" {
		return "ffmpeg"
	}
	return c.Encoding.FFmpegBinary
}

// FFprobeBinary returns the ffprobe executable used for segment inspection.
func (c *Config) FFprobeBinary() string {
	if c == nil || strings.TrimSpace(c.Encoding.FFprobeBinary) == "" {
		return "ffprobe"
	}
	return c.Encoding.FFprobeBinary
}

func expandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}
	absolute, err := filepath.Abs(filepath.Clean(value))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// DefaultOutputDir returns the "output" folder inside the user's music
// library, honouring XDG_MUSIC_DIR when set.
func DefaultOutputDir() string {
	if base, ok := os.LookupEnv("XDG_MUSIC_DIR"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "output")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bookbinder", "output")
	}
	return filepath.Join(home, "Music", "output")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
