package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadTable(t *testing.T) []Command {
	t.Helper()
	data, err := os.ReadFile("../../rpc/client/commands.yaml")
	require.NoError(t, err)

	var tbl table
	require.NoError(t, yaml.Unmarshal(data, &tbl))
	require.NoError(t, validate(tbl.Commands))
	return tbl.Commands
}

func TestRenderCommandTable(t *testing.T) {
	commands := loadTable(t)

	src, err := render("client", commands)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "commands_gen.go", src, 0)
	require.NoError(t, err)

	funcs := make(map[string]bool)
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv != nil {
			funcs[fn.Name.Name] = true
		}
	}

	for _, c := range commands {
		assert.True(t, funcs[c.Name], "missing method %s", c.Name)
		assert.Equal(t, c.FireAndForget, funcs[c.Name+"FireAndForget"], "fire and forget variant of %s", c.Name)
	}
}

func TestValidateDefaults(t *testing.T) {
	commands := []Command{{Name: "Ping", Channel: "config", Timeout: 2, Returns: "object"}}
	require.NoError(t, validate(commands))
	assert.Equal(t, "Ping", commands[0].Command)
}

func TestValidateErrors(t *testing.T) {
	valid := func() Command {
		return Command{Name: "Ping", Channel: "config", Timeout: 2, Returns: "object"}
	}

	tests := []struct {
		name   string
		modify func(c *Command)
	}{
		{"no name", func(c *Command) { c.Name = "" }},
		{"bad channel", func(c *Command) { c.Channel = "data" }},
		{"zero timeout", func(c *Command) { c.Timeout = 0 }},
		{"bad return", func(c *Command) { c.Returns = "bytes" }},
		{"param without key", func(c *Command) { c.Params = []Param{{Name: "TaskID", Type: "string"}} }},
		{"param type", func(c *Command) { c.Params = []Param{{Name: "TaskID", Key: "taskId", Type: "float32"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			assert.Error(t, validate([]Command{c}))
		})
	}

	t.Run("duplicate", func(t *testing.T) {
		assert.Error(t, validate([]Command{valid(), valid()}))
	})
}
