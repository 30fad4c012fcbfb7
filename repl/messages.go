package repl

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

const (
	msgInvalid         = "Invalid command"
	msgPrintArgs       = "Not enough arguments given for print"
	msgNotFound        = "Unable to find matrix %s"
	msgPrintNotFound   = "Matrix %s not found"
	msgCreated         = "Successfully created matrix %s"
	msgCreateFailed    = "Error creating matrix %s"
	msgDeleted         = "Deleted matrix %s"
	msgAddSub          = "Unable to add/subtract matrices %s and %s"
	msgMul             = "Unable to multiply matrices %s and %s"
	msgScale           = "Unable to multiply matrix %s by %s"
	msgInverseSquare   = "Unable to take inverse of non-square matrix"
	msgInverseRank     = "Unable to take inverse of non full-rank matrix"
	msgDetSquare       = "Unable to take determinant of non-square matrix"
	msgDetEmpty        = "Unable to take determinant of empty matrix"
	msgLUSquare        = "Unable to take LU of non-square matrix"
	msgLUFailed        = "Unable to factor matrix %s without pivoting"
	msgIntUnsupported  = "Operation not supported for integer matrices"
	msgBadSize         = "Invalid size %s"
	msgEntryPrompt     = "Enter values for a %dx%d matrix:"
	msgEntryTruncated  = "Input ended before all values were entered"
	msgNoMatrices      = "No matrices defined"
	msgBanner          = "matcalc: type help for commands, q to quit"
	msgArgumentMissing = "Missing argument"
)

const helpText = `Commands:
  let <name> = <rows> <cols>   define a matrix, values are read one per line
  let <name> = <expr>          store the result of an expression
  <expr>                       evaluate and print
  print <name>                 print a stored matrix
  det <name>                   determinant
  rank <name>                  rank
  lu <name>                    Doolittle LU factors
  list                         list defined matrices
  del <name>                   remove a matrix
  q | quit                     leave
Expressions:
  <name>  <a> + <b>  <a> - <b>  <a> * <b>  <s> * <name>  <name> * <s>
  identity <n>  rref <name>  inverse <name>  transpose <name>`

// inverseMessage maps an inversion failure to its user-visible text.
func inverseMessage(err error) string {
	switch {
	case errors.Is(err, matrix.ErrNonSquare):
		return msgInverseSquare
	case errors.Is(err, matrix.ErrSingular):
		return msgInverseRank
	default:
		return err.Error()
	}
}

// parseMessage maps a parse failure for cmd to its user-visible text.
func parseMessage(cmd Command, err error, line string) string {
	switch {
	case cmd.Kind == KindAssign && cmd.Name != "":
		return fmt.Sprintf(msgCreateFailed, cmd.Name)
	case cmd.Kind == KindPrint && errors.Is(err, ErrMissingArgument):
		return msgPrintArgs
	case errors.Is(err, ErrBadSize):
		return fmt.Sprintf(msgBadSize, lastToken(line))
	case errors.Is(err, ErrMissingArgument) && cmd.Kind != KindEval && cmd.Kind != KindAssign:
		return msgArgumentMissing
	default:
		return msgInvalid
	}
}
