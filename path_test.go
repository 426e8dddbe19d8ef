package swiftcli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/swiftcli"
)

func TestNormalizePath(t *testing.T) {
	tt := []struct {
		Name string
		Path string
		Want swiftcli.ObjectPath
	}{
		{Name: "container without slash", Path: "container", Want: "/container"},
		{Name: "container with slash", Path: "/container", Want: "/container"},
		{Name: "object without slash", Path: "container/dir/file.txt", Want: "/container/dir/file.txt"},
		{Name: "object with slash", Path: "/container/file.txt", Want: "/container/file.txt"},
		{Name: "empty", Path: "", Want: "/"},
		{Name: "root", Path: "/", Want: "/"},
		{Name: "trailing slash kept", Path: "container/dir/", Want: "/container/dir/"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got := swiftcli.NormalizePath(tc.Path)
			assert.Equal(t, tc.Want, got)

			// Normalizing twice must not change the result
			assert.Equal(t, got, swiftcli.NormalizePath(string(got)))
		})
	}
}

func TestNormalizePath_SameForBothForms(t *testing.T) {
	assert.Equal(t, swiftcli.NormalizePath("mycontainer"), swiftcli.NormalizePath("/mycontainer"))
}

func TestNormalizeDir(t *testing.T) {
	tt := []struct {
		Name string
		Path string
		Want swiftcli.ObjectPath
	}{
		{Name: "bare container", Path: "container", Want: "/container/"},
		{Name: "leading slash", Path: "/container", Want: "/container/"},
		{Name: "already normalized", Path: "/container/", Want: "/container/"},
		{Name: "nested", Path: "container/a/b", Want: "/container/a/b/"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got := swiftcli.NormalizeDir(tc.Path)
			assert.Equal(t, tc.Want, got)
			assert.Equal(t, got, swiftcli.NormalizeDir(string(got)))
		})
	}
}

func TestObjectPath_Parts(t *testing.T) {
	tt := []struct {
		Path        swiftcli.ObjectPath
		Container   string
		Object      string
		IsAccount   bool
		IsContainer bool
	}{
		{Path: "/", Container: "", Object: "", IsAccount: true},
		{Path: "/c", Container: "c", Object: "", IsContainer: true},
		{Path: "/c/", Container: "c", Object: "", IsContainer: true},
		{Path: "/c/o", Container: "c", Object: "o"},
		{Path: "/c/dir/o.txt", Container: "c", Object: "dir/o.txt"},
	}

	for _, tc := range tt {
		t.Run(string(tc.Path), func(t *testing.T) {
			assert.Equal(t, tc.Container, tc.Path.Container())
			assert.Equal(t, tc.Object, tc.Path.Object())
			assert.Equal(t, tc.IsAccount, tc.Path.IsAccount())
			assert.Equal(t, tc.IsContainer, tc.Path.IsContainer())
		})
	}
}

func TestObjectPath_Join(t *testing.T) {
	assert.Equal(t, swiftcli.ObjectPath("/c/file.txt"), swiftcli.ObjectPath("/c/").Join("file.txt"))
	assert.Equal(t, swiftcli.ObjectPath("/c/dir/file.txt"), swiftcli.ObjectPath("/c/dir").Join("/file.txt"))
}

func TestObjectPath_Trim(t *testing.T) {
	assert.Equal(t, swiftcli.ObjectPath("/c"), swiftcli.ObjectPath("/c/").Trim())
	assert.Equal(t, swiftcli.ObjectPath("/c/dir"), swiftcli.ObjectPath("/c/dir/").Trim())
	assert.Equal(t, swiftcli.ObjectPath("/"), swiftcli.ObjectPath("/").Trim())
}
