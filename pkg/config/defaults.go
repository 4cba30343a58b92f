package config

import (
	"os"
	"strings"
)

// Default values for configuration.
const (
	DefaultOutput           = "text"
	DefaultProgressInterval = 50000
)

// Environment variable names.
const (
	// EnvExtensions replaces the extension allow-list with a
	// comma-separated list, e.g. "go,py,txt".
	EnvExtensions = "TREESIFT_EXTENSIONS"
)

// defaultExtensions is the built-in allow-list. Names whose final
// extension is not listed here are classified as directories.
var defaultExtensions = []string{
	// Documents and text
	"txt", "md", "rst", "rtf", "doc", "docx", "odt", "pdf", "tex",
	"log", "csv", "tsv",
	// Data and config
	"json", "yaml", "yml", "toml", "ini", "cfg", "conf", "xml",
	"properties", "env", "lock",
	// Source code
	"go", "py", "rb", "rs", "c", "h", "cpp", "hpp", "cc", "cs",
	"java", "kt", "scala", "swift", "m", "mm", "js", "mjs", "ts",
	"tsx", "jsx", "php", "pl", "pm", "lua", "r", "jl", "ex", "exs",
	"erl", "hs", "clj", "groovy", "dart", "vb", "fs", "asm",
	// Shell and build
	"sh", "bash", "zsh", "fish", "ps1", "bat", "cmd", "mk",
	"cmake", "gradle", "sbt",
	// Web
	"html", "htm", "css", "scss", "sass", "less", "vue", "svelte",
	// Images
	"png", "jpg", "jpeg", "gif", "bmp", "ico", "svg", "webp", "tif",
	"tiff", "psd", "raw", "heic",
	// Audio and video
	"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "mp4", "avi",
	"mkv", "mov", "wmv", "flv", "webm", "m4v", "mpg", "mpeg",
	// Archives
	"zip", "tar", "gz", "bz2", "xz", "zst", "rar", "7z", "tgz",
	"iso", "dmg",
	// Binaries and libraries
	"exe", "dll", "so", "dylib", "a", "o", "bin", "deb", "rpm",
	"apk", "jar", "war", "class", "pyc", "wasm",
	// Databases
	"db", "sqlite", "sqlite3", "sql", "mdb", "parquet", "avro",
	// Fonts
	"ttf", "otf", "woff", "woff2", "eot",
	// Spreadsheets and presentations
	"xls", "xlsx", "ods", "ppt", "pptx", "odp",
	// Misc
	"bak", "tmp", "swp", "pem", "crt", "key", "sig", "torrent",
}

// DefaultConfig returns a configuration with the built-in allow-list
// and sensible defaults.
func DefaultConfig() *Config {
	exts := make([]string, len(defaultExtensions))
	copy(exts, defaultExtensions)
	return &Config{
		Extensions:       exts,
		Output:           DefaultOutput,
		ProgressInterval: DefaultProgressInterval,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to
// the config.
func (c *Config) applyEnvironmentOverrides() {
	if raw := os.Getenv(EnvExtensions); raw != "" {
		var exts []string
		for _, ext := range strings.Split(raw, ",") {
			ext = strings.TrimSpace(ext)
			if ext != "" {
				exts = append(exts, ext)
			}
		}
		if len(exts) > 0 {
			c.Extensions = exts
		}
	}
}
