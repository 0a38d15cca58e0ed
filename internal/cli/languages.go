package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/review"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and recognized file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range review.Languages() {
			fmt.Fprintf(os.Stdout, "%-12s %s\n", l.Tag(), l.Display())
		}
		fmt.Fprintf(os.Stdout, "\nRecognized extensions: %s\n", strings.Join(review.KnownExtensions(), ", "))
	},
}
