package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a random-generation settings file",
	Long: `Create a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'delaunay.yml' is used. The file controls the
point count, bound and seed used by -r/--random.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "delaunay.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(defaultSettings())
		if err != nil {
			fmt.Println("error,", err)
			return
		}
		if err := writeFile(path, buf); err != nil {
			fmt.Println("error,", err)
			return
		}
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
