package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/semweave/refract/internal/config"
	"github.com/semweave/refract/internal/syntax"
)

// --- Code Printer (output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"|":  5,
	"^":  6,
	"&":  7,
	"<<": 8,
	">>": 8,
	"+":  9,
	"-":  9,
	"*":  10,
	"/":  10,
	"%":  10,
}

const unaryPrecedence = 11

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return unaryPrecedence // default high precedence for unknown ops
}

// CodePrinter renders syntax nodes as canonical source text.
type CodePrinter struct {
	buf bytes.Buffer
}

func New() *CodePrinter {
	return &CodePrinter{}
}

// Type renders a type expression.
func (p *CodePrinter) Type(t syntax.TypeExpr) string {
	p.buf.Reset()
	p.writeType(t)
	return p.buf.String()
}

// Path renders a path.
func (p *CodePrinter) Path(path *syntax.Path) string {
	p.buf.Reset()
	p.writePath(path)
	return p.buf.String()
}

// Expr renders an expression.
func (p *CodePrinter) Expr(e syntax.Expr) string {
	p.buf.Reset()
	p.writeExpr(e, 0)
	return p.buf.String()
}

func (p *CodePrinter) writeType(t syntax.TypeExpr) {
	switch ty := t.(type) {
	case *syntax.PathType:
		p.writePath(ty.Path)
	case *syntax.RefType:
		p.buf.WriteString("&")
		if ty.Mut {
			p.buf.WriteString("mut ")
		}
		p.writeType(ty.Elem)
	case *syntax.PtrType:
		if ty.Mut {
			p.buf.WriteString("*mut ")
		} else {
			p.buf.WriteString("*const ")
		}
		p.writeType(ty.Elem)
	case *syntax.ArrayType:
		p.buf.WriteString("[")
		p.writeType(ty.Elem)
		p.buf.WriteString("; ")
		p.writeExpr(ty.Len, 0)
		p.buf.WriteString("]")
	case *syntax.SliceType:
		p.buf.WriteString("[")
		p.writeType(ty.Elem)
		p.buf.WriteString("]")
	case *syntax.TupleType:
		p.buf.WriteString("(")
		for i, e := range ty.Elems {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.writeType(e)
		}
		p.buf.WriteString(")")
	case *syntax.NeverType:
		p.buf.WriteString(config.NeverTypeName)
	case *syntax.InferType:
		p.buf.WriteString(config.InferTypeName)
	}
}

func (p *CodePrinter) writePath(path *syntax.Path) {
	segs := path.Segments
	if path.QSelf != nil {
		p.buf.WriteString("<")
		p.writeType(path.QSelf)
		p.buf.WriteString(">")
		if len(segs) > 0 {
			p.buf.WriteString(config.PathSeparator)
		}
	}
	for i, seg := range segs {
		if seg.Name == config.PathRootSegmentName {
			// Spelled as a leading separator, never as a name.
			p.buf.WriteString(config.PathSeparator)
			continue
		}
		if i > 0 && segs[i-1].Name != config.PathRootSegmentName {
			p.buf.WriteString(config.PathSeparator)
		}
		p.buf.WriteString(seg.Name)
		if len(seg.Args) > 0 {
			p.buf.WriteString("<")
			for j, arg := range seg.Args {
				if j > 0 {
					p.buf.WriteString(", ")
				}
				p.writeType(arg)
			}
			p.buf.WriteString(">")
		}
	}
}

func (p *CodePrinter) writeExpr(e syntax.Expr, parentPrec int) {
	switch ex := e.(type) {
	case *syntax.IntLit:
		p.buf.WriteString(strconv.FormatUint(ex.Value, 10))
		p.buf.WriteString(ex.Suffix)
	case *syntax.UnaryExpr:
		// Unary binds tighter than any binary operator.
		p.buf.WriteString(ex.Op)
		p.writeExpr(ex.Operand, unaryPrecedence)
	case *syntax.BinaryExpr:
		prec := getPrecedence(ex.Op)
		paren := prec < parentPrec
		if paren {
			p.buf.WriteString("(")
		}
		p.writeExpr(ex.Lhs, prec)
		p.buf.WriteString(" " + ex.Op + " ")
		p.writeExpr(ex.Rhs, prec+1)
		if paren {
			p.buf.WriteString(")")
		}
	}
}
