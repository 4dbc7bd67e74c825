package array

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestScenarios(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		arrays := map[string]*Array[string]{}

		get := func(t *testing.T, td *datadriven.TestData, key string) (string, *Array[string]) {
			var name string
			td.ScanArgs(t, key, &name)
			a, ok := arrays[name]
			if !ok {
				td.Fatalf(t, "unknown array %q", name)
			}
			return name, a
		}
		intArg := func(t *testing.T, td *datadriven.TestData, key string) int {
			var v int
			td.ScanArgs(t, key, &v)
			return v
		}
		// keep stores a produced array under into=, when given.
		keep := func(td *datadriven.TestData, o *Array[string]) {
			if o == nil || !td.HasArg("into") {
				return
			}
			var name string
			td.ScanArgs(t, "into", &name)
			arrays[name] = o
		}

		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			var o strings.Builder
			show := func(name string, a *Array[string]) {
				fmt.Fprintf(&o, "%s: %v\n", name, a)
			}
			result := func(v any, err error) {
				if err != nil {
					fmt.Fprintf(&o, "error: %v\n", err)
					return
				}
				fmt.Fprintf(&o, "result: %v\n", v)
			}

			switch td.Cmd {
			case "new":
				var name string
				td.ScanArgs(t, "a", &name)
				a := New[string]()
				if td.HasArg("cap") {
					var err error
					a, err = WithCapacity[string](intArg(t, td, "cap"))
					if err != nil {
						return fmt.Sprintf("error: %v\n", err)
					}
				}
				for _, v := range strings.Fields(td.Input) {
					a.Add(v)
				}
				arrays[name] = a
				show(name, a)

			case "info":
				name, a := get(t, td, "a")
				fmt.Fprintf(&o, "%s: len=%d cap=%d low=%d high=%d\n",
					name, a.Len(), a.Cap(), a.LowIndex(), a.HighIndex())

			case "in-range":
				_, a := get(t, td, "a")
				fmt.Fprintln(&o, a.IndexInRange(intArg(t, td, "i")))

			case "get":
				name, a := get(t, td, "a")
				result(a.Get(intArg(t, td, "i")))
				show(name, a)

			case "set":
				name, a := get(t, td, "a")
				var v string
				td.ScanArgs(t, "v", &v)
				result(a.Set(intArg(t, td, "i"), v))
				show(name, a)

			case "insert":
				name, a := get(t, td, "a")
				var v string
				td.ScanArgs(t, "v", &v)
				if err := a.Insert(intArg(t, td, "i"), v); err != nil {
					result(nil, err)
				}
				show(name, a)

			case "add":
				name, a := get(t, td, "a")
				for _, arg := range td.CmdArgs {
					if arg.Key != "v" {
						continue
					}
					for _, v := range arg.Vals {
						a.Add(v)
					}
				}
				show(name, a)

			case "remove":
				name, a := get(t, td, "a")
				result(a.Remove(intArg(t, td, "i")))
				show(name, a)

			case "sublist", "delete", "extract":
				name, a := get(t, td, "a")
				from, to := intArg(t, td, "from"), intArg(t, td, "to")
				var (
					r   *Array[string]
					err error
				)
				switch td.Cmd {
				case "sublist":
					r, err = a.Sublist(from, to)
				case "delete":
					r, err = a.Delete(from, to)
				default:
					r, err = a.Extract(from, to)
				}
				result(r, err)
				keep(td, r)
				show(name, a)

			case "split-prefix", "split-suffix":
				name, a := get(t, td, "a")
				i := intArg(t, td, "i")
				var (
					r   *Array[string]
					err error
				)
				if td.Cmd == "split-prefix" {
					r, err = a.SplitPrefix(i)
				} else {
					r, err = a.SplitSuffix(i)
				}
				result(r, err)
				keep(td, r)
				show(name, a)

			case "append":
				name, a := get(t, td, "a")
				other, b := get(t, td, "b")
				r := a.Append(b)
				result(r, nil)
				keep(td, r)
				show(name, a)
				if other != name {
					show(other, b)
				}

			case "insert-all":
				name, a := get(t, td, "a")
				other, b := get(t, td, "b")
				_, err := a.InsertAll(intArg(t, td, "i"), b)
				if err != nil {
					result(nil, err)
				}
				show(name, a)
				if other != name {
					show(other, b)
				}

			case "clone":
				name, a := get(t, td, "a")
				r := a.Clone()
				keep(td, r)
				fmt.Fprintf(&o, "result: %v cap=%d\n", r, r.Cap())
				show(name, a)

			default:
				td.Fatalf(t, "unknown command %v", td.Cmd)
			}
			return o.String()
		})
	})
}
