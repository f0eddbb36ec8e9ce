package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhichhn93/conversation-intel-agent/internal/version"
)

var versionLong bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if versionLong {
			out, _ := yaml.Marshal(info)
			fmt.Fprint(cmd.OutOrStdout(), string(out))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), info.Version)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionLong, "long", false, "Print detailed version information as YAML")
	rootCmd.AddCommand(versionCmd)
}
