package kmerge

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/kmerge/internal/build"
	"github.com/common-fate/kmerge/pkg/config"
	"github.com/urfave/cli/v2"
)

func GetCliApp() *cli.App {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to the Kubernetes config file", EnvVars: []string{"KMERGE_KUBECONFIG"}, DefaultText: "~/.kube/config"},
		&cli.StringFlag{Name: "merge", Aliases: []string{"m"}, Usage: "Path to the new config to merge", TakesFile: true},
		&cli.StringFlag{Name: "delete-cluster", Aliases: []string{"d"}, Usage: "Name of the cluster to delete"},
		&cli.StringFlag{Name: "delete-user", Aliases: []string{"du"}, Usage: "Name of the user to delete from the Kubernetes config"},
		&cli.BoolFlag{Name: "backup", Aliases: []string{"b"}, Usage: "Backup the original configuration"},
		&cli.BoolFlag{Name: "list-users", Aliases: []string{"lu"}, Usage: "List all users from the Kubernetes config, one name per line on stdout (the heading goes to stderr)"},
		&cli.BoolFlag{Name: "list-contexts", Aliases: []string{"lc"}, Usage: "List all contexts from the Kubernetes config, one name per line on stdout (the heading goes to stderr)"},
		&cli.BoolFlag{Name: "list-clusters", Aliases: []string{"lk"}, Usage: "List all clusters from the Kubernetes config, one name per line on stdout (the heading goes to stderr)"},
		&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
	}

	app := &cli.App{
		Flags:       flags,
		Name:        "kmerge",
		Usage:       "Kubernetes Configuration Manager",
		UsageText:   "kmerge [options]",
		Version:     build.Version,
		HideVersion: false,
		// multi-letter aliases such as -du must not be split into -d -u
		UseShortOptionHandling: false,
		Before: func(c *cli.Context) error {
			clio.SetLevelFromEnv("KMERGE_LOG")
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			opts := Options{
				ConfigPath:    c.String("config"),
				MergePath:     c.String("merge"),
				DeleteCluster: c.String("delete-cluster"),
				DeleteUser:    c.String("delete-user"),
				Backup:        c.Bool("backup"),
				ListUsers:     c.Bool("list-users"),
				ListContexts:  c.Bool("list-contexts"),
				ListClusters:  c.Bool("list-clusters"),
			}

			if !opts.HasAction() {
				if err := cli.ShowAppHelp(c); err != nil {
					return err
				}
				return clierr.New("No action specified",
					clierr.Infof("Pass at least one of --merge, --delete-cluster, --delete-user, --list-users, --list-contexts or --list-clusters, see '%s --help'", build.BinaryName()),
				)
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}
			if opts.ConfigPath == "" {
				opts.ConfigPath = settings.KubeconfigPath
			}
			opts.Backup = opts.Backup || settings.AlwaysBackup
			clio.Debugw("resolved options", "config", opts.ConfigPath, "backup", opts.Backup)

			return Run(opts, c.App.Writer)
		},
	}

	return app
}
