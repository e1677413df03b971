/*
Package kubeconfig edits kubeconfig files without requiring them to fit a
fixed schema.

A [Config] is the decoded YAML document. Only the clusters, contexts, users
and current-context keys are interpreted; everything else is carried through
untouched so that a [Load] followed by a [Save] never drops data.

It allows you to :

  - [Load] and [Save] a kubeconfig file, and take a one-off [Backup]
  - [Config.Merge] the entries of another kubeconfig in, keeping existing names
  - [Config.DeleteCluster] and [Config.DeleteUser] by name
  - list entry names with [Config.Names]
*/
package kubeconfig
