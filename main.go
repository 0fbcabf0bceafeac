package main

import (
	"fmt"
	"os"

	"q.log/tableau/instance"
	"q.log/tableau/simplex"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tableau <instance.mps>")
		os.Exit(2)
	}

	r := instance.NewReader(os.Args[1])
	p, err := r.ReadProblem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p.PrintC()
	p.PrintA()
	p.PrintB()

	res, err := simplex.Solve(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("status = %v\n", res.Status)
	if res.Status != simplex.Optimal {
		return
	}
	fmt.Printf("Z = %v\n", res.Objective())
	for i, v := range res.Solution() {
		fmt.Printf("x%d = %v\n", i+1, v)
	}
}
