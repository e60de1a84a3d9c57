package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structbench/structures"
)

var demoCmd = &cobra.Command{
	Use:   "demo [stack|queue|list]",
	Short: "Walk through stack, queue and linked list operations step by step",
	Long: `Demo builds each structure interactively on stdout: push/pop on a
stack, enqueue/dequeue on a queue, and the full insert/delete/search
repertoire on a singly linked list, printing the structure after each
step so the mechanics are visible.

With no argument all three structures are demonstrated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			demoStack(cmd)
			demoQueue(cmd)
			demoList(cmd)

			return nil
		}

		switch args[0] {
		case "stack":
			demoStack(cmd)
		case "queue":
			demoQueue(cmd)
		case "list", "linked_list", "linkedlist":
			demoList(cmd)
		default:
			return fmt.Errorf("unknown structure %q: want stack, queue or list", args[0])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func demoStack(cmd *cobra.Command) {
	cmd.Println(titleStyle.Render("STACK — last in, first out"))

	s := structures.NewStack[int]()
	for _, v := range []int{10, 20, 30} {
		s.Push(v)
		cmd.Printf("%s %d\n%s\n", labelStyle.Render("push"), v, s)
	}

	if top, err := s.Peek(); err == nil {
		cmd.Printf("%s %d (stack unchanged)\n", labelStyle.Render("peek"), top)
	}
	if v, err := s.Pop(); err == nil {
		cmd.Printf("%s %d\n%s\n", labelStyle.Render("pop"), v, s)
	}

	cmd.Printf("%s %d: distance from top = %d\n\n",
		labelStyle.Render("search"), 10, s.Search(10))
}

func demoQueue(cmd *cobra.Command) {
	cmd.Println(titleStyle.Render("QUEUE — first in, first out"))

	q := structures.NewQueue[string]()
	for _, v := range []string{"alice", "bob", "carol"} {
		q.Enqueue(v)
		cmd.Printf("%s %q\n%s\n", labelStyle.Render("enqueue"), v, q)
	}

	if front, err := q.Peek(); err == nil {
		cmd.Printf("%s %q (queue unchanged)\n", labelStyle.Render("peek"), front)
	}
	if v, err := q.Dequeue(); err == nil {
		cmd.Printf("%s %q\n%s\n", labelStyle.Render("dequeue"), v, q)
	}

	cmd.Printf("%s %q: position from front = %d\n\n",
		labelStyle.Render("search"), "carol", q.Search("carol"))
}

func demoList(cmd *cobra.Command) {
	cmd.Println(titleStyle.Render("LINKED LIST — sequential access, O(1) end inserts"))

	l := structures.NewList[int]()
	l.InsertHead(2)
	cmd.Printf("%s 2\n%s\n", labelStyle.Render("insert head"), l)
	l.InsertHead(1)
	cmd.Printf("%s 1\n%s\n", labelStyle.Render("insert head"), l)
	l.InsertTail(4)
	cmd.Printf("%s 4\n%s\n", labelStyle.Render("insert tail"), l)

	if err := l.InsertAt(3, 2); err == nil {
		cmd.Printf("%s 3 at position 2\n%s\n", labelStyle.Render("insert"), l)
	}

	cmd.Printf("%s 3: index = %d\n", labelStyle.Render("search"), l.Search(3))
	if v, err := l.Get(1); err == nil {
		cmd.Printf("%s index 1: value = %d (walked 1 link)\n", labelStyle.Render("access"), v)
	}

	if l.Delete(3) {
		cmd.Printf("%s 3\n%s\n", labelStyle.Render("delete"), l)
	}
	cmd.Println()
}
