package file

import (
	"io/ioutil"
	"os"
	"path"
)

// SearchDir walks dir recursively and returns the paths of the files
// accepted by filter.
func SearchDir(dir string, filter func(filepath string) bool) ([]string, error) {
	var (
		fileInfos []os.FileInfo
		err       error
	)
	result := make([]string, 0, 256)
	if fileInfos, err = ioutil.ReadDir(dir); err != nil {
		return nil, err
	}
	for _, fileInfo := range fileInfos {
		filepath := path.Join(dir, fileInfo.Name())
		if fileInfo.IsDir() {
			var filepaths []string
			if filepaths, err = SearchDir(filepath, filter); err != nil {
				return nil, err
			}
			result = append(result, filepaths...)
		} else if filter(filepath) {
			result = append(result, filepath)
		}
	}
	return result, nil
}
