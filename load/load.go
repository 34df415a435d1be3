package load

import (
	"fmt"
	"io"
	"os"
	"phasor/load/ast"
	"phasor/types"
	"strings"

	_ "phasor/element/phasor"
	_ "phasor/element/wattmeter"
)

// LoadString 加载网表字符串。
func LoadString(s string) (con *Context, err error) {
	return LoadContext(strings.NewReader(s))
}

// LoadFile 加载网表文件。
func LoadFile(filename string) (con *Context, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadContext(file)
}

// LoadContext 加载网表并按顺序计算所有语句。
func LoadContext(r io.Reader) (con *Context, err error) {
	// 解析网表
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return nil, err
	}
	con = NewContext()
	for _, node := range parseTree.Nodes {
		var name string
		var v any
		switch n := node.(type) {
		case *ast.ValueNode:
			// 只有数值变量参与计算，其余仅用于 % 替换
			f, ok := n.Value.ParseFloat64()
			if !ok {
				continue
			}
			name, v = n.Name, f
		case *ast.ElementNode:
			name = n.ID
			v, err = createElementFromAST(n, parseTree)
		case *ast.ExprNode:
			name = n.Name
			v, err = con.evalExpr(n)
		}
		if err == nil {
			err = con.Set(name, v)
		}
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", node.Pos(), err)
		}
	}
	return con, nil
}

// createElementFromAST 根据AST元素节点创建元件实例
func createElementFromAST(elemNode *ast.ElementNode, parseTree *ast.ParseTree) (any, error) {
	// 根据类型名称查找元件类型
	et := types.GetNameType(elemNode.Type)
	if et == types.TypeUnknown {
		return nil, fmt.Errorf("未知的元件类型 '%s'", elemNode.Type)
	}
	value := make(types.ValueMap, len(elemNode.Values))
	for _, val := range elemNode.Values {
		if val.IsVar {
			v, ok := parseTree.ValueNodes[val.Value]
			if !ok {
				return nil, fmt.Errorf("未定义的变量 '%%%s'", val.Value)
			}
			val.Value = v
		}
		if _, ok := value[val.Key]; ok {
			return nil, fmt.Errorf("参数 '%s' 重复定义", val.Key)
		}
		value[val.Key] = val.Value
	}
	return et.Build(value)
}

// evalExpr 计算表达式
func (con *Context) evalExpr(expr *ast.ExprNode) (any, error) {
	args := make([]any, len(expr.Args))
	for i, a := range expr.Args {
		v, err := con.operand(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch expr.Op {
	case ast.OpSum:
		return Sum(args...)
	case ast.OpCopy, ast.OpNeg, ast.OpConj, ast.OpPF, ast.OpPower:
		return Unary(expr.Op, args[0])
	}
	return Apply(expr.Op, args[0], args[1])
}

// operand 运算数可以是数字、已定义名称或 %变量
func (con *Context) operand(val ast.Value) (any, error) {
	if f, ok := val.ParseFloat64(); ok {
		return f, nil
	}
	if v, ok := con.Values[val.Value]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("未定义的名称 '%s'", val.Value)
}
