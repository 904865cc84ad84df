package lume

// Expr is the expression side of the tree. Concrete nodes are pointer
// structs; each node owns its children exclusively.
type Expr interface{}

type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

type GroupingExpr struct {
	Inner Expr
}

// LiteralExpr carries the literal as source text. Its runtime type is
// inferred from content when evaluated, never tagged here.
type LiteralExpr struct {
	Value string
}

type UnaryExpr struct {
	Op    Token
	Right Expr
}

type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

type VariableExpr struct {
	Name Token
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

type LogicalExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Stmt is the statement side of the tree.
type Stmt interface{}

type ExpressionStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a binding. Init is nil when no initializer was written.
type VarStmt struct {
	Name Token
	Init Expr
}

type BlockStmt struct {
	Statements []Stmt
}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
}

// WhileStmt also carries desugared for loops: the parser rewrites
// `for (init; cond; incr) body` into Block{init, While{cond, Block{body,
// incr}}}, so no distinct for node exists in the tree.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}
