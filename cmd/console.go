package cmd

import apperrors "github.com/cristianoliveira/pawmatch/internal/errors"

// console receives the notices subcommands print around their output.
var console apperrors.ErrorHandler = apperrors.NewDefaultCLIHandler()
