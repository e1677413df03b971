package kubeconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
preferences:
  colors: true
current-context: a
clusters:
  - name: a
    cluster:
      server: https://a.example.com
  - name: b
    cluster:
      server: https://b.example.com
contexts:
  - name: a
    context:
      cluster: a
      user: a
  - name: b-admin
    context:
      cluster: b
      user: admin
      namespace: kube-system
users:
  - name: a
    user:
      token: token-a
  - name: admin
    user:
      client-certificate-data: Y2VydA==
`

func parse(t *testing.T, doc string) Config {
	t.Helper()
	c := New()
	require.NoError(t, c.Unmarshal([]byte(doc)))
	return c
}

func names(t *testing.T, c Config, key string) []string {
	t.Helper()
	n, err := c.Names(key)
	require.NoError(t, err)
	return n
}

// str reads the string scalar at the end of path, a chain of mapping keys.
func str(t *testing.T, entry map[string]any, path ...string) string {
	t.Helper()
	var v any = entry
	for _, key := range path {
		m, ok := v.(map[string]any)
		require.True(t, ok, "%v is not a mapping", path)
		v = m[key]
	}
	s, ok := scalarString(v)
	require.True(t, ok, "%v is not a string", path)
	return s
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
