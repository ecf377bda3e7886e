package vpnmon_builder

import (
	"fmt"
	"os"
	"regexp"

	rice "github.com/GeertJohan/go.rice"
)

var resourceBox *rice.Box

// openBox opens the resource payload box.
// For go.rice's 'append' mode to work, all calls to FindBox() have to be with
// a literal string parameter.
func openBox() {
	var err error
	resourceBox, err = rice.FindBox("resources")
	if err != nil {
		panic(err)
	}
}

// GetResource returns the content of a named resource file from the resource
// box.
func GetResource(name string) (string, error) {
	if resourceBox == nil {
		return "", fmt.Errorf("resource box not opened")
	}
	content, err := resourceBox.String(name)
	if err != nil {
		return "", fmt.Errorf("resource %s not found", name)
	}
	return content, nil
}

// MustGetResource is like GetResource but panics if the resource is missing.
// Only use for resources that are part of the builder itself.
func MustGetResource(name string) string {
	content, err := GetResource(name)
	if err != nil {
		panic(err)
	}
	return content
}

// MustGetResourceFiltered returns the contents of all files underneath the
// given resource directory whose paths match the filter, indexed by their
// path inside the box.
func MustGetResourceFiltered(dir string, filter *regexp.Regexp) map[string]string {
	if resourceBox == nil {
		panic("resource box not opened")
	}
	files := make(map[string]string)
	err := resourceBox.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !filter.MatchString(path) {
			return nil
		}
		content, err := resourceBox.String(path)
		if err != nil {
			return err
		}
		files[path] = content
		return nil
	})
	if err != nil {
		panic(err)
	}
	return files
}
