package test

import (
	"math/rand"
	"strings"
)

const validStatements = `var a = 1;;print a + 2 * 3;;a = a - 1;;print "this is a string";;print 'a longer string literal with some text in it: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua';;print (1 + 2) / 3 <= 4 ? "small" : "big";;if (a > 0) print a; else print -a;;while (a > 100) a = a / 2;;for (var i = 0; i < 3; i = i + 1) print i;;{ var inner = "shadow"; print inner; };;// a line comment
;;/* a block
comment */
;;print nil == nil and true or false;`

// GetRandomStatements returns size syntactically valid statements joined by
// newlines, for scanner and parser benchmarks.
func GetRandomStatements(size int) string {
	return GetRandomStatementsWithSep(size, "\n")
}

func GetRandomStatementsWithSep(size int, sep string) string {
	valid := strings.Split(validStatements, ";;")

	var stmts []string
	for len(stmts) < size {
		stmts = append(stmts, valid[rand.Intn(len(valid))])
	}

	return strings.Join(stmts, sep)
}
