// Package astutil renders DST type expressions back to Go source text.
package astutil

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// FieldTypes returns one rendered type per declared name in fields.
// An unnamed field contributes one entry.
func FieldTypes(fields *dst.FieldList) []string {
	if fields == nil {
		return nil
	}

	var out []string

	for _, field := range fields.List {
		rendered := TypeString(field.Type)

		for range max(len(field.Names), 1) {
			out = append(out, rendered)
		}
	}

	return out
}

// TypeString renders a type expression as Go source.
func TypeString(expr dst.Expr) string {
	var buf strings.Builder

	writeExpr(&buf, expr)

	return buf.String()
}

// writeExpr appends expr to buf.
//
//nolint:cyclop,funlen // Type-switch dispatcher over DST expression nodes; complexity is inherent
func writeExpr(buf *strings.Builder, expr dst.Expr) {
	switch typed := expr.(type) {
	case nil:
	case *dst.Ident:
		if typed.Path != "" {
			buf.WriteString(typed.Path)
			buf.WriteString(".")
		}

		buf.WriteString(typed.Name)
	case *dst.BasicLit:
		buf.WriteString(typed.Value)
	case *dst.SelectorExpr:
		writeExpr(buf, typed.X)
		buf.WriteString(".")
		buf.WriteString(typed.Sel.Name)
	case *dst.StarExpr:
		buf.WriteString("*")
		writeExpr(buf, typed.X)
	case *dst.ParenExpr:
		buf.WriteString("(")
		writeExpr(buf, typed.X)
		buf.WriteString(")")
	case *dst.Ellipsis:
		buf.WriteString("...")
		writeExpr(buf, typed.Elt)
	case *dst.ArrayType:
		buf.WriteString("[")
		writeExpr(buf, typed.Len)
		buf.WriteString("]")
		writeExpr(buf, typed.Elt)
	case *dst.MapType:
		buf.WriteString("map[")
		writeExpr(buf, typed.Key)
		buf.WriteString("]")
		writeExpr(buf, typed.Value)
	case *dst.ChanType:
		switch typed.Dir {
		case dst.SEND:
			buf.WriteString("chan<- ")
		case dst.RECV:
			buf.WriteString("<-chan ")
		default:
			buf.WriteString("chan ")
		}

		writeExpr(buf, typed.Value)
	case *dst.FuncType:
		buf.WriteString("func")
		writeSignature(buf, typed)
	case *dst.IndexExpr:
		writeExpr(buf, typed.X)
		buf.WriteString("[")
		writeExpr(buf, typed.Index)
		buf.WriteString("]")
	case *dst.IndexListExpr:
		writeExpr(buf, typed.X)
		buf.WriteString("[")

		for i, index := range typed.Indices {
			if i > 0 {
				buf.WriteString(", ")
			}

			writeExpr(buf, index)
		}

		buf.WriteString("]")
	case *dst.UnaryExpr:
		buf.WriteString(typed.Op.String())
		writeExpr(buf, typed.X)
	case *dst.BinaryExpr:
		writeExpr(buf, typed.X)
		buf.WriteString(" " + typed.Op.String() + " ")
		writeExpr(buf, typed.Y)
	case *dst.InterfaceType:
		writeInterface(buf, typed)
	case *dst.StructType:
		writeStruct(buf, typed)
	default:
		fmt.Fprintf(buf, "%T", expr)
	}
}

func writeInterface(buf *strings.Builder, iface *dst.InterfaceType) {
	if iface.Methods == nil || len(iface.Methods.List) == 0 {
		buf.WriteString("interface{}")

		return
	}

	buf.WriteString("interface{ ")

	for i, method := range iface.Methods.List {
		if i > 0 {
			buf.WriteString("; ")
		}

		funcType, isMethod := method.Type.(*dst.FuncType)
		if !isMethod || len(method.Names) == 0 {
			writeExpr(buf, method.Type)

			continue
		}

		buf.WriteString(method.Names[0].Name)
		writeSignature(buf, funcType)
	}

	buf.WriteString(" }")
}

func writeSignature(buf *strings.Builder, funcType *dst.FuncType) {
	buf.WriteString("(")
	buf.WriteString(strings.Join(FieldTypes(funcType.Params), ", "))
	buf.WriteString(")")

	results := FieldTypes(funcType.Results)

	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" ")
		buf.WriteString(results[0])
	default:
		buf.WriteString(" (")
		buf.WriteString(strings.Join(results, ", "))
		buf.WriteString(")")
	}
}

func writeStruct(buf *strings.Builder, structType *dst.StructType) {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		buf.WriteString("struct{}")

		return
	}

	buf.WriteString("struct{ ")

	for i, field := range structType.Fields.List {
		if i > 0 {
			buf.WriteString("; ")
		}

		for j, name := range field.Names {
			if j > 0 {
				buf.WriteString(", ")
			}

			buf.WriteString(name.Name)
		}

		if len(field.Names) > 0 {
			buf.WriteString(" ")
		}

		writeExpr(buf, field.Type)

		if field.Tag != nil {
			buf.WriteString(" ")
			buf.WriteString(field.Tag.Value)
		}
	}

	buf.WriteString(" }")
}
