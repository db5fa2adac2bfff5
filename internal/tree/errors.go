package tree

import (
	"fmt"

	appErrors "treeselect/internal/errors"
)

func invalidInputError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidInput, reason, nil)
}

func nodeNotFoundError(id string) error {
	return appErrors.New(appErrors.CodeNodeNotFound, fmt.Sprintf("node not found: %s", id), nil)
}

func configurationError(reason string) error {
	return appErrors.New(appErrors.CodeConfigurationError, reason, nil)
}
