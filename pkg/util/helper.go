package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func RemoveDuplication_map(arr []string) []string {
	set := make(map[string]struct{}, len(arr))
	j := 0
	for _, v := range arr {
		_, ok := set[v]
		if ok {
			continue
		}
		set[v] = struct{}{}
		arr[j] = v
		j++
	}

	return arr[:j]
}

// SearchPaths splits a PATH style value. Empty elements are dropped, the
// current directory is never searched implicitly.
func SearchPaths(path_env string) []string {
	var paths []string
	for _, p := range filepath.SplitList(path_env) {
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return RemoveDuplication_map(paths)
}

func isExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not exists", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}

// FindProgram resolves the program to trace. A name containing / is checked
// as given, anything else is searched in search_paths in order. Like
// exec.LookPath, a match in a relative search path is refused with exec.ErrDot.
func FindProgram(program string, search_paths []string) (string, error) {
	if program == "" {
		return "", fmt.Errorf("empty program name")
	}
	if strings.Contains(program, "/") {
		if err := isExecutable(program); err != nil {
			return program, err
		}
		return program, nil
	}
	for _, search_path := range RemoveDuplication_map(append([]string{}, search_paths...)) {
		// 去掉末尾可能存在的 /
		check_path := strings.TrimRight(search_path, "/") + "/" + program
		if isExecutable(check_path) != nil {
			continue
		}
		if !filepath.IsAbs(check_path) {
			return program, errors.Wrapf(exec.ErrDot, "%s resolves to %s", program, check_path)
		}
		return check_path, nil
	}
	return program, fmt.Errorf("can not find %s in these paths\n\t%s", program, strings.Join(search_paths, "\n\t"))
}
