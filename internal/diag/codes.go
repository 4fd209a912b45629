package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexInvalidEscape            Code = 1005
	LexUnterminatedChar         Code = 1006
	LexEmptyChar                Code = 1007
	LexBadAnnotation            Code = 1008

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynUnclosedDelimiter  Code = 2006
	SynUnexpectedTopLevel Code = 2007
	SynExpectColon        Code = 2008
	SynExpectPattern      Code = 2009
	SynExpectMatchArm     Code = 2010
	SynForMissingIn       Code = 2011
	SynBadAnnotationUse   Code = 2012
	SynExpectLBrace       Code = 2013
	SynExpectRBrace       Code = 2014
	SynExpectRParen       Code = 2015
	SynExpectRBracket     Code = 2016
	SynExpectModulePath   Code = 2017
	SynBadTupleIndex      Code = 2018

	// Semantic (name resolution and type checking)
	SemaInfo                Code = 3000
	SemaRedefinition        Code = 3001
	SemaUndeclared          Code = 3002
	SemaUnknownType         Code = 3003
	SemaTypeMismatch        Code = 3004
	SemaConditionNotBool    Code = 3005
	SemaReturnMismatch      Code = 3006
	SemaMissingReturn       Code = 3007
	SemaMissingAnnotation   Code = 3008
	SemaBinaryMismatch      Code = 3009
	SemaBreakOutsideLoop    Code = 3010
	SemaContinueOutsideLoop Code = 3011
	SemaDeprecatedUsage     Code = 3012

	// Code generation
	GenInfo            Code = 4000
	GenInvalidIR       Code = 4001
	GenUnknownFunction Code = 4002
	GenUnknownVariable Code = 4003
	GenBadAssignTarget Code = 4004
	GenUnsupported     Code = 4005

	// I/O and driver
	IOLoadFileError  Code = 5001
	IOWriteFileError Code = 5002
	IOBadManifest    Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexInvalidEscape:            "Invalid escape sequence",
	LexUnterminatedChar:         "Unterminated character literal",
	LexEmptyChar:                "Empty character literal",
	LexBadAnnotation:            "Malformed annotation",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expect semicolon",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectType:               "Expect type",
	SynExpectExpression:         "Expect expression",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnexpectedTopLevel:       "Unexpected top-level item",
	SynExpectColon:              "Expect colon",
	SynExpectPattern:            "Expect pattern",
	SynExpectMatchArm:           "Expect match arm",
	SynForMissingIn:             "Missing 'in' in for loop",
	SynBadAnnotationUse:         "Annotation not allowed here",
	SynExpectLBrace:             "Expect opening brace",
	SynExpectRBrace:             "Expect closing brace",
	SynExpectRParen:             "Expect closing parenthesis",
	SynExpectRBracket:           "Expect closing bracket",
	SynExpectModulePath:         "Expect module path",
	SynBadTupleIndex:            "Invalid tuple index",
	SemaInfo:                    "Semantic information",
	SemaRedefinition:            "Redefinition",
	SemaUndeclared:              "Use of undeclared identifier",
	SemaUnknownType:             "Unknown type",
	SemaTypeMismatch:            "Type mismatch",
	SemaConditionNotBool:        "Condition is not Bool",
	SemaReturnMismatch:          "Return type mismatch",
	SemaMissingReturn:           "Missing return value",
	SemaMissingAnnotation:       "Missing type annotation",
	SemaBinaryMismatch:          "Binary expression type mismatch",
	SemaBreakOutsideLoop:        "'break' outside of a loop",
	SemaContinueOutsideLoop:     "'continue' outside of a loop",
	SemaDeprecatedUsage:         "Usage of deprecated element",
	GenInfo:                     "Code generation information",
	GenInvalidIR:                "Generated invalid IR",
	GenUnknownFunction:          "Unknown function",
	GenUnknownVariable:          "Unknown variable",
	GenBadAssignTarget:          "Invalid assignment target",
	GenUnsupported:              "Construct not supported by code generation",
	IOLoadFileError:             "Cannot read source file",
	IOWriteFileError:            "Cannot write output file",
	IOBadManifest:               "Malformed project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
