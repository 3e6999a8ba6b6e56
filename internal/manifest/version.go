package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatibility reports an error when the running CLI version does not
// satisfy the manifest's cliVersion constraint. Development builds whose
// version is not valid semver skip the check.
func CheckCompatibility(f *File, cliVersion string) error {
	if f.CLIVersion == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(f.CLIVersion)
	if err != nil {
		return fmt.Errorf("parsing cliVersion constraint %q: %w", f.CLIVersion, err)
	}

	current, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return nil
	}
	if !constraint.Check(current) {
		return fmt.Errorf("manifest requires CLI version %s, running %s", f.CLIVersion, current)
	}
	return nil
}
