package compiler

import "smolccgo/pkg/asmcheck"

// Options controls the optional stages Compile runs after codegen.
type Options struct {
	Check bool // run the structural assembly validator before returning
}

// Compile runs the full Lex -> Parse -> Generate pipeline over src and
// returns the generated AArch64 assembly text. Every stage communicates
// failure through *CompileError; Compile stops at the first one, matching
// the external "first error is fatal" policy the driver enforces.
func Compile(fileID FileID, src string, opts Options) (string, *CompileError) {
	ts := NewTokenStream(fileID, src)

	body, err := ParseProgram(ts)
	if err != nil {
		return "", err
	}

	asmText, err := Generate(body)
	if err != nil {
		return "", err
	}

	if opts.Check {
		if checkErr := asmcheck.Validate(asmText); checkErr != nil {
			return "", failNoLoc(StageAsmCheck, "%s", checkErr.Message)
		}
	}

	return asmText, nil
}
