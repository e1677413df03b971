package kubeconfig

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCluster(t *testing.T) {
	tests := []struct {
		name               string
		doc                string
		cluster            string
		wantChanged        bool
		wantClusters       []string
		wantContexts       []string
		wantUsers          []string
		wantCurrentContext string
	}{
		{
			name:               "cascades to contexts",
			doc:                testKubeconfig,
			cluster:            "b",
			wantChanged:        true,
			wantClusters:       []string{"a"},
			wantContexts:       []string{"a"},
			wantUsers:          []string{"a", "admin"},
			wantCurrentContext: "a",
		},
		{
			name:               "removes user with the cluster name and resets current-context",
			doc:                testKubeconfig,
			cluster:            "a",
			wantChanged:        true,
			wantClusters:       []string{"b"},
			wantContexts:       []string{"b-admin"},
			wantUsers:          []string{"admin"},
			wantCurrentContext: "",
		},
		{
			name:               "orphan contexts are removed without reporting a change",
			doc:                "clusters:\n- name: a\ncontexts:\n- name: x\n  context:\n    cluster: gone\nusers:\n- name: gone\n",
			cluster:            "gone",
			wantChanged:        false,
			wantClusters:       []string{"a"},
			wantContexts:       []string{},
			wantUsers:          []string{},
			wantCurrentContext: "",
		},
		{
			name:               "missing collections",
			doc:                "current-context: foo\n",
			cluster:            "foo",
			wantChanged:        false,
			wantClusters:       []string{},
			wantContexts:       []string{},
			wantUsers:          []string{},
			wantCurrentContext: "",
		},
		{
			name:               "duplicates are all removed",
			doc:                "clusters:\n- name: a\n- name: b\n- name: a\n",
			cluster:            "a",
			wantChanged:        true,
			wantClusters:       []string{"b"},
			wantContexts:       []string{},
			wantUsers:          []string{},
			wantCurrentContext: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parse(t, tt.doc)
			changed, err := c.DeleteCluster(tt.cluster)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantClusters, names(t, c, KeyClusters))
			assert.Equal(t, tt.wantContexts, names(t, c, KeyContexts))
			assert.Equal(t, tt.wantUsers, names(t, c, KeyUsers))
			assert.Equal(t, tt.wantCurrentContext, c.CurrentContext())
		})
	}
}

func TestDeleteClusterLeavesOtherEntriesUntouched(t *testing.T) {
	c := parse(t, testKubeconfig)
	want := parse(t, testKubeconfig)

	changed, err := c.DeleteCluster("b")
	require.NoError(t, err)
	assert.True(t, changed)

	wantClusters, _ := want.Entries(KeyClusters)
	gotClusters, _ := c.Entries(KeyClusters)
	assert.Empty(t, cmp.Diff(wantClusters[:1], gotClusters))

	for _, key := range []string{"apiVersion", "kind", "preferences", KeyUsers} {
		assert.Empty(t, cmp.Diff(want[key], c[key]), key)
	}
}

func TestDeleteClusterAbsentName(t *testing.T) {
	c := parse(t, testKubeconfig)

	changed, err := c.DeleteCluster("nonexistent")
	require.NoError(t, err)

	assert.False(t, changed)
	assert.Empty(t, cmp.Diff(map[string]any(parse(t, testKubeconfig)), map[string]any(c)))
}

func TestDeleteClusterContextWithoutCluster(t *testing.T) {
	c := parse(t, "contexts:\n- name: x\n  context:\n    user: u\n")

	_, err := c.DeleteCluster("a")

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr), "got %v", err)
	assert.Equal(t, "contexts[0].context.cluster", shapeErr.Path)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		user        string
		wantChanged bool
		wantUsers   []string
	}{
		{name: "existing user", doc: testKubeconfig, user: "admin", wantChanged: true, wantUsers: []string{"a"}},
		{name: "unknown user", doc: testKubeconfig, user: "nobody", wantChanged: false, wantUsers: []string{"a", "admin"}},
		{name: "no users key", doc: "clusters:\n- name: a\n", user: "a", wantChanged: false, wantUsers: []string{}},
		{name: "null users", doc: "users: null\n", user: "a", wantChanged: false, wantUsers: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parse(t, tt.doc)
			changed, err := c.DeleteUser(tt.user)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantUsers, names(t, c, KeyUsers))
		})
	}
}

func TestDeleteUserLeavesContexts(t *testing.T) {
	c := parse(t, testKubeconfig)

	_, err := c.DeleteUser("admin")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b-admin"}, names(t, c, KeyContexts))
	assert.Equal(t, []string{"a", "b"}, names(t, c, KeyClusters))
}
