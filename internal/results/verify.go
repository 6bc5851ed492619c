package results

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// MismatchError reports report replicas whose contents diverged, grouped by
// checksum.
type MismatchError struct {
	Checksums map[uint64][]string
}

func (e *MismatchError) Error() string {
	builder := strings.Builder{}
	builder.WriteString("report checksum mismatch:\n")
	for checksum, paths := range e.Checksums {
		builder.WriteString(fmt.Sprintf("checksum %x: %s\n", checksum, strings.Join(paths, ", ")))
	}
	return builder.String()
}

// Checksum returns the xxhash64 digest of the report at path.
func Checksum(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open report %s", path)
	}
	defer f.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, errors.Wrapf(err, "hash report %s", path)
	}
	return hasher.Sum64(), nil
}

// Verify confirms that every report replica at paths holds identical bytes.
// Paths with no file present are skipped; a divergence is reported as a
// *MismatchError.
func Verify(paths []string) error {
	checksums := make(map[string]uint64)
	for _, path := range paths {
		sum, err := Checksum(path)
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				continue
			}
			return err
		}
		checksums[path] = sum
	}
	if len(checksums) == 0 {
		return nil // no replicas found
	}

	distinct := make(map[uint64][]string)
	for path, sum := range checksums {
		distinct[sum] = append(distinct[sum], path)
	}
	if len(distinct) > 1 {
		return &MismatchError{Checksums: distinct}
	}
	return nil
}
