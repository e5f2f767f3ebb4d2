package main

import (
	"fmt"
	"strings"

	"github.com/Rosuav/clize"
)

func main() {
	echo := &clize.Cli{
		Name: "echo",
		Doc: `Echo text back, possibly repeatedly.

text: What to say

reps: How many times to say it

shout: Print in uppercase`,
		Args: []clize.Descriptor{
			{Name: "text"},
			{Name: "reps", HasDefault: true, Default: 1,
				Annotations: []clize.Annotation{clize.Alias("n")}},
			{Name: "shout", HasDefault: true, Default: false,
				Annotations: []clize.Annotation{clize.Alias("S")}},
		},
		Extra: []clize.Option{clize.VersionFlag("0.1.0", nil)},
		Invoke: func(args []any) error {
			text := args[0].(string)
			if args[2].(bool) {
				text = strings.ToUpper(text)
			}
			for i := 0; i < args[1].(int); i++ {
				fmt.Println(text)
			}
			return nil
		},
	}

	join := &clize.Cli{
		Name: "join",
		Doc: `Join all remaining words with dashes.

words: The words to join`,
		Args: []clize.Descriptor{
			{Name: "words", Rest: true},
		},
		Invoke: func(args []any) error {
			if len(args) == 0 {
				return nil
			}
			fmt.Println(strings.ReplaceAll(args[0].(string), " ", "-"))
			return nil
		},
	}

	group := &clize.Group{
		Description: "A tiny demo of the argument engine.",
		Commands:    []*clize.Cli{echo, join},
	}
	clize.RunGroup(group, nil)
}
