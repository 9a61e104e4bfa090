package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/parser"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse exprlang source code and display the AST",
	Long: `Parse exprlang source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full tree structure instead of the
reconstructed source form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	block, err := parser.Parse(input)
	if err != nil {
		return reportInterpreterError("<parse>", err)
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(block, 0)
	} else {
		fmt.Println(block.String())
	}

	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExprStatement:
		fmt.Printf("%sExprStatement\n", indentStr)
		dumpASTNode(n.Expr, indent+1)
	case *ast.VarDecl:
		typ := "auto"
		if n.Type != nil {
			typ = *n.Type
		}
		fmt.Printf("%sVarDecl %s %s const=%v\n", indentStr, typ, n.Name, n.Const)
		if n.Init != nil {
			dumpASTNode(n.Init, indent+1)
		}
	case *ast.VarAssign:
		fmt.Printf("%sVarAssign %s\n", indentStr, n.Name)
		dumpASTNode(n.Value, indent+1)
	case *ast.VarRef:
		fmt.Printf("%sVarRef: %s\n", indentStr, n.Name)
	case *ast.NonLocal:
		fmt.Printf("%sNonLocal: %s\n", indentStr, n.Name)
	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp (%s)\n", indentStr, n.Symbol)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.ComparisonOp:
		fmt.Printf("%sComparisonOp (%s)\n", indentStr, n.Symbol)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", indentStr, n.Symbol)
		dumpASTNode(n.Child, indent+1)
	case *ast.IncDecOp:
		fmt.Printf("%sIncDecOp %s%s\n", indentStr, n.Target, n.Symbol)
	case *ast.AssignOp:
		fmt.Printf("%sAssignOp %s %s=\n", indentStr, n.Target, n.Symbol)
		dumpASTNode(n.Value, indent+1)
	case *ast.Dot:
		fmt.Printf("%sDot (rightIsRef=%v)\n", indentStr, n.RightIsRef)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.For:
		fmt.Printf("%sFor\n", indentStr)
		dumpASTNode(n.Init, indent+1)
		dumpASTNode(n.Check, indent+1)
		dumpASTNode(n.Change, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.While:
		fmt.Printf("%sWhile\n", indentStr)
		dumpASTNode(n.Check, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.If:
		fmt.Printf("%sIf\n", indentStr)
		dumpASTNode(n.Check, indent+1)
		dumpASTNode(n.Body, indent+1)
		dumpASTNode(n.Else, indent+1)
	default:
		fmt.Printf("%s%T: %v\n", indentStr, node, node)
	}
}
