package kmerge

import (
	"fmt"
	"io"

	"github.com/common-fate/clio"
	"github.com/common-fate/kmerge/pkg/kubeconfig"
)

// Options are the actions requested for one run.
type Options struct {
	// ConfigPath is the kubeconfig being edited.
	ConfigPath string
	// MergePath, when set, is a kubeconfig whose new entries are merged in.
	MergePath     string
	DeleteCluster string
	DeleteUser    string
	Backup        bool
	ListUsers     bool
	ListContexts  bool
	ListClusters  bool
}

// HasAction reports whether opts asks for anything besides a backup.
func (o Options) HasAction() bool {
	return o.MergePath != "" || o.DeleteCluster != "" || o.DeleteUser != "" ||
		o.ListUsers || o.ListContexts || o.ListClusters
}

type listing struct {
	enabled bool
	names   func() ([]string, error)
	heading string
}

// Run applies opts to the kubeconfig at opts.ConfigPath. Edits happen in
// memory in a fixed order (merge, delete cluster, delete user, then the
// listings) and the file is written once at the end, only if something changed.
// Names are written to w one per line; the listing headings are logged.
func Run(opts Options, w io.Writer) error {
	if opts.Backup {
		created, err := kubeconfig.Backup(opts.ConfigPath)
		if err != nil {
			return err
		}
		if created {
			clio.Infof("Backup of the original configuration has been saved to %s", kubeconfig.BackupPath(opts.ConfigPath))
		}
	}

	cfg, err := kubeconfig.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	changesMade := false

	if opts.MergePath != "" {
		other, err := kubeconfig.Load(opts.MergePath)
		if err != nil {
			return err
		}
		changed, err := cfg.Merge(other)
		if err != nil {
			return err
		}
		changesMade = changesMade || changed
		if changed {
			clio.Successf("Merged configurations from %s", opts.MergePath)
		} else {
			clio.Infof("Nothing new to merge from %s", opts.MergePath)
		}
	}

	if opts.DeleteCluster != "" {
		changed, err := cfg.DeleteCluster(opts.DeleteCluster)
		if err != nil {
			return err
		}
		changesMade = changesMade || changed
		if changed {
			clio.Successf("Deleted cluster %s", opts.DeleteCluster)
		} else {
			clio.Warnf("Cluster %s was not found in %s", opts.DeleteCluster, opts.ConfigPath)
		}
	}

	if opts.DeleteUser != "" {
		changed, err := cfg.DeleteUser(opts.DeleteUser)
		if err != nil {
			return err
		}
		changesMade = changesMade || changed
		if changed {
			clio.Successf("Deleted user %s", opts.DeleteUser)
		} else {
			clio.Warnf("User %s was not found in %s", opts.DeleteUser, opts.ConfigPath)
		}
	}

	listings := []listing{
		{enabled: opts.ListUsers, names: cfg.UserNames, heading: "Users in the Kubernetes config:"},
		{enabled: opts.ListContexts, names: cfg.ContextNames, heading: "Contexts in the Kubernetes config:"},
		{enabled: opts.ListClusters, names: cfg.ClusterNames, heading: "Clusters in the Kubernetes config:"},
	}
	for _, l := range listings {
		if !l.enabled {
			continue
		}
		names, err := l.names()
		if err != nil {
			return err
		}
		clio.Info(l.heading)
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
	}

	if !changesMade {
		clio.Debug("no changes made, leaving the config untouched")
		return nil
	}
	if err := kubeconfig.Save(cfg, opts.ConfigPath); err != nil {
		return err
	}
	clio.Successf("Configuration saved to %s", opts.ConfigPath)
	return nil
}
