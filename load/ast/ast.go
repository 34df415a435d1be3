// Package ast 提供相量网表解析的抽象语法树（AST）功能。
// 网表按行解析，每行是元件定义、值设置命令、表达式或注释。
package ast

import (
	"bufio"
	"fmt"
	"io"
	"phasor/utils"
	"strings"
)

// 常量定义 - 用于语法分析的关键字和符号
const (
	tokenValue       = ".value" // 值设置命令
	tokenLBracket    = "["      // 左方括号
	tokenRBracket    = "]"      // 右方括号
	tokenAssign      = "="      // 赋值
	tokenVar         = "%"      // 变量引用前缀
	tokenCommentHash = "#"      // # 注释
	tokenCommentLine = "//"     // // 行注释
)

// 表达式运算
const (
	OpCopy  = ""      // 直接引用
	OpSum   = "sum"   // 求和
	OpNeg   = "neg"   // 取负
	OpConj  = "conj"  // 共轭
	OpPF    = "pf"    // 功率因数
	OpPower = "power" // 有功功率
)

// Node 语法树节点
type Node interface {
	Pos() int // 行号
}

// ElementNode 表示元件定义节点，如 phasor z1 [mod=380, gr=30]
type ElementNode struct {
	Type   string  // 元件类型，如 "phasor", "watt"
	ID     string  // 元件名称
	Values []Value // 关键字参数列表
	Line   int     // 行号
}

// ValueNode 表示值设置节点，如 .value k 2.5
type ValueNode struct {
	Command string // 命令，如 ".value"
	Name    string // 变量名
	Value   Value  // 值
	Line    int    // 行号
}

// ExprNode 表示表达式节点，如 r1 = z1 * z2
type ExprNode struct {
	Name string  // 结果名称
	Op   string  // 运算符或函数名
	Args []Value // 运算数
	Line int     // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

func (n *ElementNode) Pos() int { return n.Line }
func (n *ValueNode) Pos() int   { return n.Line }
func (n *ExprNode) Pos() int    { return n.Line }
func (n *CommentNode) Pos() int { return n.Line }

// ParseTree 解析树
type ParseTree struct {
	Nodes        []Node            // 按出现顺序排列的语句
	CommentNodes []*CommentNode    // 注释列表
	ValueNodes   map[string]string // 变量列表
}

// String 调试输出
func (parseTree *ParseTree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "解析成功! 找到 %d 条语句, %d 个值设置, %d 个注释\n",
		len(parseTree.Nodes), len(parseTree.ValueNodes), len(parseTree.CommentNodes))
	for i, node := range parseTree.Nodes {
		switch n := node.(type) {
		case *ElementNode:
			fmt.Fprintf(&b, "语句 %d (行号: %d): 元件 %s %s %v\n", i+1, n.Line, n.Type, n.ID, n.Values)
		case *ValueNode:
			fmt.Fprintf(&b, "语句 %d (行号: %d): 值设置 %s = %s\n", i+1, n.Line, n.Name, n.Value.Value)
		case *ExprNode:
			fmt.Fprintf(&b, "语句 %d (行号: %d): 表达式 %s = %s %v\n", i+1, n.Line, n.Name, n.Op, n.Args)
		}
	}
	return b.String()
}

// NewParseTree 生成网表解析树
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	parseTree = &ParseTree{
		ValueNodes: map[string]string{},
	}
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line, comment, ok := splitComment(scanner.Text())
		if ok {
			parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
				Text: comment,
				Line: lineNum,
			})
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var node Node
		switch {
		case strings.HasPrefix(line, tokenValue):
			var v *ValueNode
			if v, err = parseValueCommand(line, lineNum); err == nil {
				parseTree.ValueNodes[v.Name] = v.Value.Value
				node = v
			}
		case isExpression(line):
			node, err = parseExpression(line, lineNum)
		default:
			node, err = parseElementDefinition(line, lineNum)
		}
		if err != nil {
			return nil, err
		}
		parseTree.Nodes = append(parseTree.Nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取网表时出错: %w", err)
	}
	return parseTree, nil
}

// parseValueCommand 解析 .value 命令
func parseValueCommand(line string, lineNum int) (*ValueNode, error) {
	fields := strings.Fields(line)
	if fields[0] != tokenValue {
		return nil, errorAtLine(lineNum, "未知命令 '%s'", fields[0])
	}
	switch len(fields) {
	case 1:
		return nil, errorAtLine(lineNum, ".value 命令缺少名称")
	case 2:
		return nil, errorAtLine(lineNum, ".value 命令缺少值")
	}
	if !isIdent(fields[1]) {
		return nil, errorAtLine(lineNum, "变量名 '%s' 无效", fields[1])
	}
	return &ValueNode{
		Command: tokenValue,
		Name:    fields[1],
		Value:   Value{Value: strings.Join(fields[2:], ""), Line: lineNum},
		Line:    lineNum,
	}, nil
}

// parseElementDefinition 解析元件定义：类型 名称 [key=value, ...]
func parseElementDefinition(line string, lineNum int) (*ElementNode, error) {
	head, list, ok := strings.Cut(line, tokenLBracket)
	if !ok {
		return nil, errorAtLine(lineNum, "缺少参数列表开始标记 [")
	}
	list = strings.TrimSpace(list)
	if !strings.HasSuffix(list, tokenRBracket) {
		return nil, errorAtLine(lineNum, "缺少参数列表结束标记 ]")
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return nil, errorAtLine(lineNum, "元件定义应为: 类型 名称 [参数]")
	}
	if !isIdent(fields[0]) || !isIdent(fields[1]) {
		return nil, errorAtLine(lineNum, "元件类型或名称无效: %s %s", fields[0], fields[1])
	}
	netlist := utils.SplitNetList(strings.TrimSuffix(list, tokenRBracket))
	values := make([]Value, 0, len(netlist))
	for i := range netlist {
		key, val, ok := netlist.KeyValue(i)
		if !ok {
			return nil, errorAtLine(lineNum, "参数 '%s' 不是 key=value 形式", netlist[i])
		}
		values = append(values, newValue(key, val, lineNum))
	}
	return &ElementNode{
		Type:   fields[0],
		ID:     fields[1],
		Values: values,
		Line:   lineNum,
	}, nil
}

// parseExpression 解析表达式：
//
//	名称 = a op b      (op: + - * / ^ **)
//	名称 = fn a        (fn: neg conj pf power)
//	名称 = sum a b ...
//	名称 = a
func parseExpression(line string, lineNum int) (*ExprNode, error) {
	name, rest, _ := strings.Cut(line, tokenAssign)
	name = strings.TrimSpace(name)
	if !isIdent(name) {
		return nil, errorAtLine(lineNum, "结果名称 '%s' 无效", name)
	}
	fields := strings.Fields(rest)
	node := &ExprNode{Name: name, Line: lineNum}
	switch {
	case len(fields) == 0:
		return nil, errorAtLine(lineNum, "表达式为空")
	case len(fields) == 1:
		node.Op = OpCopy
		node.Args = operands(fields, lineNum)
	case fields[0] == OpSum:
		node.Op = OpSum
		node.Args = operands(fields[1:], lineNum)
	case len(fields) == 2 && isUnary(fields[0]):
		node.Op = fields[0]
		node.Args = operands(fields[1:], lineNum)
	case len(fields) == 3 && isBinary(fields[1]):
		node.Op = fields[1]
		if node.Op == "**" {
			node.Op = "^"
		}
		node.Args = operands([]string{fields[0], fields[2]}, lineNum)
	default:
		return nil, errorAtLine(lineNum, "无法识别的表达式 '%s'", strings.TrimSpace(rest))
	}
	// 运算数只能是数字、名称或 %变量，运算符两侧需要空白
	for _, arg := range node.Args {
		if _, ok := arg.ParseFloat64(); !ok && !isIdent(arg.Value) {
			return nil, errorAtLine(lineNum, "无法识别的表达式 '%s'", strings.TrimSpace(rest))
		}
	}
	return node, nil
}

func operands(fields []string, lineNum int) []Value {
	values := make([]Value, len(fields))
	for i, f := range fields {
		values[i] = newValue("", f, lineNum)
	}
	return values
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}
