package cmd

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/z3rone-org/dirlock/lib/dirlock"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// initConfig initializes configuration from environment variables.
// The format of the environment variables is DIRLOCK_<flag>
// (e.g. DIRLOCK_RETRY_INTERVAL=50)
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dirlock")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// setupLockFlags adds the common lock configuration flags to a command
func setupLockFlags(cmd *cobra.Command) {
	key := "timeout"
	cmd.Flags().Float64(key, -1, WrapString("Seconds to keep retrying before giving up (negative means wait forever, 0 means a single attempt)"))

	key = "retry-interval"
	cmd.Flags().Int(key, 100, WrapString("Milliseconds to sleep between attempts"))
}

// lockFromFlags creates a lock handle for path from the bound flags
func lockFromFlags(path string) *dirlock.DirLock {
	opts := []dirlock.Option{
		dirlock.WithRetryInterval(time.Duration(viper.GetInt("retry-interval")) * time.Millisecond),
		dirlock.WithTimeout(time.Duration(viper.GetFloat64("timeout") * float64(time.Second))),
	}

	return dirlock.New(path, opts...)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
