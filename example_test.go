package lkv_test

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lkv"
)

func ExampleOTM_Insert() {
	otm := lkv.New[string, string]()
	otm.Insert("example", "hello")
	otm.Insert("example", "world")

	fmt.Println(otm.Get("example"))
	// Output: [hello world]
}

func ExampleOTM_Get() {
	otm := lkv.New[string, struct{}]()

	fmt.Println(len(otm.Get("doesn't exist!")))
	// Output: 0
}

func ExampleOTM_GetMut() {
	otm := lkv.New[int, int]()
	otm.Insert(1, 0)

	target := otm.GetMut(1)
	target[0] = 1

	fmt.Println(otm.Get(1))
	// Output: [1]
}

func ExampleOTM_InsertMany() {
	otm := lkv.New[string, string]()
	otm.InsertMany("greeting", "hello", "world")

	fmt.Println(otm.Get("greeting"))
	// Output: [hello world]
}

func ExampleOTM_Merge() {
	c := lkv.New[int, int]()
	c.InsertMany(0, 1, 0)

	o := lkv.New[int, int]()
	o.Insert(1, 1)

	c.Merge(o)
	fmt.Println(c.Get(0), c.Get(1), c.NumKeys(), o.NumKeys())
	// Output: [1 0] [1] 2 0
}

func ExampleOTM_All() {
	otm := lkv.New[string, int](func(o *lkv.Options[string]) {
		o.Equal = strings.EqualFold
	})
	otm.Insert("Accept", 1)
	otm.Insert("Host", 2)
	otm.Insert("ACCEPT", 3)

	for key, vals := range otm.All() {
		fmt.Println(key, vals)
	}
	// Output:
	// Accept [1 3]
	// Host [2]
}

func ExampleOTM_Drain() {
	otm := lkv.New[string, int]()
	otm.InsertMany("a", 1, 2)
	otm.Insert("b", 3)

	for key, vals := range otm.Drain() {
		fmt.Println(key, vals)
	}
	fmt.Println(otm.NumKeys())
	// Output:
	// a [1 2]
	// b [3]
	// 0
}
