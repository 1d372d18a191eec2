package commands

import (
	"github.com/anvil-build/anvil/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a toolchain profile for a target platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetOS, _ := cmd.Flags().GetString("target-os")
			arch, _ := cmd.Flags().GetString("arch")
			compiler, _ := cmd.Flags().GetString("compiler")
			root, _ := cmd.Flags().GetString("root")
			buildType, _ := cmd.Flags().GetString("build-type")
			envFile, _ := cmd.Flags().GetString("env-file")
			configPath, _ := cmd.Flags().GetString("config")
			format, _ := cmd.Flags().GetString("format")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				OS:         targetOS,
				Arch:       arch,
				Compiler:   compiler,
				Root:       root,
				BuildType:  buildType,
				EnvFile:    envFile,
				ConfigPath: configPath,
				Format:     format,
				Watch:      watch,
			})
		},
	}

	cmd.Flags().String("target-os", "", "Target operating system: linux, macos or windows")
	cmd.Flags().String("arch", "", "Target CPU architecture: x86_64 or arm64")
	cmd.Flags().String("compiler", "", "Compiler family: gcc, clang, clang-cl or mingw")
	cmd.Flags().String("root", "", "Explicit toolchain root, overriding all discovery")
	cmd.Flags().StringP("build-type", "t", "", "Restrict flag output to one build type")
	cmd.Flags().String("env-file", "", "Read the environment snapshot from a KEY=VALUE file")
	cmd.Flags().String("config", "", "Config file path (default: discover anvil.yaml)")
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or text")
	cmd.Flags().BoolP("watch", "w", false, "Re-resolve when watched toolchain paths change")

	_ = cmd.MarkFlagRequired("target-os")
	_ = cmd.MarkFlagRequired("arch")
	_ = cmd.MarkFlagRequired("compiler")

	return cmd
}
