package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/trust-lang/trustc/frontend/sema"
)

func compile(t *testing.T, code string, lib bool) string {
	t.Helper()
	a := sema.AnalyzeFile("test.trust", code, sema.Options{Library: lib})
	for _, d := range a.Diags {
		t.Fatalf("unexpected diagnostic: %s", d.Message)
	}
	out, err := Generate(a)
	be.Err(t, err, nil)
	return out
}

func TestGenerateProgram(t *testing.T) {
	out := compile(t, `fn main() { let x: i32 = 5; println!("x = {}", x); }`, false)
	want := `#include <stdio.h>
#include <stdbool.h>

int main(void);

int main(void) {
    int x = 5;
    printf("x = %d\n", x);
    return 0;
}

`
	be.Equal(t, out, want)
}

func TestGenerateGlobals(t *testing.T) {
	code := "let g = 5;\nlet h = g + 1;\nfn main() { println!(\"{}\", h); }"
	out := compile(t, code, false)
	want := `#include <stdio.h>
#include <stdbool.h>

int g = 5;
int h;

int main(void);

static void __trust_init(void) {
    h = (g + 1);
}

int main(void) {
    __trust_init();
    printf("%d\n", h);
    return 0;
}

`
	be.Equal(t, out, want)
}

func TestGenerateLibraryInit(t *testing.T) {
	out := compile(t, "let a = [1, 2, 3]; let b = a[1];", true)
	be.True(t, strings.Contains(out, "int a[3] = {1, 2, 3};\nint b;\n"))
	be.True(t, strings.Contains(out, "\nvoid __trust_init(void) {\n    b = a[1];\n}\n"))
	be.True(t, !strings.Contains(out, "static"))
	be.True(t, !strings.Contains(out, "main"))
}

func TestGenerateStructsInSourceOrder(t *testing.T) {
	out := compile(t, "fn main() { let t = ((1, 2), true); let u = (false, 3); }", false)
	structs := `typedef struct {
    int f0;
    int f1;
} tuple_i32_i32;

typedef struct {
    tuple_i32_i32 f0;
    bool f1;
} tuple_tuple_i32_i32_bool;

typedef struct {
    bool f0;
    int f1;
} tuple_bool_i32;
`
	be.True(t, strings.Contains(out, structs))
	be.True(t, strings.Contains(out, "    tuple_tuple_i32_i32_bool t = {.f0 = {.f0 = 1, .f1 = 2}, .f1 = true};\n"))
	be.Equal(t, strings.Count(out, "} tuple_i32_i32;"), 1)
}

func TestGenerateTupleDestructure(t *testing.T) {
	out := compile(t, `fn main() { let (a, b) = (1, true); println!("{} {}", a, b); }`, false)
	body := `    tuple_i32_bool __trust_t0 = {.f0 = 1, .f1 = true};
    int a = __trust_t0.f0;
    bool b = __trust_t0.f1;
    printf("%d %d\n", a, b);
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateArrayReturn(t *testing.T) {
	code := "fn make() -> [i32; 3] { return [1, 2, 3]; }\n" +
		"fn main() { let a = make(); println!(\"{}\", a[1]); }"
	out := compile(t, code, false)

	be.True(t, strings.Contains(out, "int *make(void);\nint main(void);\n"))
	callee := `int *make(void) {
    static int __trust_ret_make[3];
    int *__trust_t0 = (int[3]){1, 2, 3};
    for (int __trust_i1 = 0; __trust_i1 < 3; __trust_i1++) {
        __trust_ret_make[__trust_i1] = __trust_t0[__trust_i1];
    }
    return __trust_ret_make;
}
`
	be.True(t, strings.Contains(out, callee))
	caller := `    int a[3];
    int *__trust_t2 = make();
    for (int __trust_i3 = 0; __trust_i3 < 3; __trust_i3++) {
        a[__trust_i3] = __trust_t2[__trust_i3];
    }
    printf("%d\n", a[1]);
`
	be.True(t, strings.Contains(out, caller))
}

func TestGenerateArrayAssign(t *testing.T) {
	out := compile(t, "fn main() { let a = [1, 2]; let mut b = [0; 2]; b = a; }", false)
	body := `    int a[2] = {1, 2};
    int b[2] = {0, 0};
    for (int __trust_i0 = 0; __trust_i0 < 2; __trust_i0++) {
        b[__trust_i0] = a[__trust_i0];
    }
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateShadowingInitializer(t *testing.T) {
	code := "fn main() { let x = 1; let a = [1, 2]; { let x = x + 1; let a = [a[1], x]; println!(\"{} {}\", x, a[1]); } }"
	out := compile(t, code, false)
	body := `    int x = 1;
    int a[2] = {1, 2};
    {
        int __trust_t0 = (x + 1);
        int x = __trust_t0;
        int __trust_t1[2] = {a[1], x};
        int a[2];
        for (int __trust_i2 = 0; __trust_i2 < 2; __trust_i2++) {
            a[__trust_i2] = __trust_t1[__trust_i2];
        }
        printf("%d %d\n", x, a[1]);
    }
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateAggregatesOfArrays(t *testing.T) {
	code := `fn main() {
    let a = [1, 2];
    let t = (a, 3);
    let m = [a, a];
    let r = [a; 2];
    let (b, n) = t;
    println!("{} {} {} {}", b[1], n, m[1][1], r[1][1]);
}`
	out := compile(t, code, false)
	body := `    int a[2] = {1, 2};
    tuple_arr2_i32_i32 t;
    for (int __trust_i0 = 0; __trust_i0 < 2; __trust_i0++) {
        t.f0[__trust_i0] = a[__trust_i0];
    }
    t.f1 = 3;
    int m[2][2];
    for (int __trust_i1 = 0; __trust_i1 < 2; __trust_i1++) {
        m[0][__trust_i1] = a[__trust_i1];
    }
    for (int __trust_i2 = 0; __trust_i2 < 2; __trust_i2++) {
        m[1][__trust_i2] = a[__trust_i2];
    }
    int r[2][2];
    int __trust_t3[2];
    for (int __trust_i4 = 0; __trust_i4 < 2; __trust_i4++) {
        __trust_t3[__trust_i4] = a[__trust_i4];
    }
    for (int __trust_i5 = 0; __trust_i5 < 2; __trust_i5++) {
        for (int __trust_i6 = 0; __trust_i6 < 2; __trust_i6++) {
            r[__trust_i5][__trust_i6] = __trust_t3[__trust_i6];
        }
    }
    tuple_arr2_i32_i32 __trust_t7 = t;
    int b[2];
    for (int __trust_i8 = 0; __trust_i8 < 2; __trust_i8++) {
        b[__trust_i8] = __trust_t7.f0[__trust_i8];
    }
    int n = __trust_t7.f1;
    printf("%d %d %d %d\n", b[1], n, m[1][1], r[1][1]);
`
	if !strings.Contains(out, body) {
		t.Errorf("unexpected body:\n%s", out)
	}
}

func TestGenerateAssignReadsOldValue(t *testing.T) {
	code := `fn main() { let mut m = [[1, 2], [3, 4], [5, 6]]; m = [m[1], m[2], m[1]]; println!("{}", m[2][1]); }`
	out := compile(t, code, false)
	body := `    int m[3][2] = {{1, 2}, {3, 4}, {5, 6}};
    int __trust_t0[3][2];
    for (int __trust_i1 = 0; __trust_i1 < 2; __trust_i1++) {
        __trust_t0[0][__trust_i1] = m[1][__trust_i1];
    }
    for (int __trust_i2 = 0; __trust_i2 < 2; __trust_i2++) {
        __trust_t0[1][__trust_i2] = m[2][__trust_i2];
    }
    for (int __trust_i3 = 0; __trust_i3 < 2; __trust_i3++) {
        __trust_t0[2][__trust_i3] = m[1][__trust_i3];
    }
    for (int __trust_i4 = 0; __trust_i4 < 3; __trust_i4++) {
        for (int __trust_i5 = 0; __trust_i5 < 2; __trust_i5++) {
            m[__trust_i4][__trust_i5] = __trust_t0[__trust_i4][__trust_i5];
        }
    }
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateArrayInCallArgument(t *testing.T) {
	code := "fn sum(p: (i32, i32)) -> i32 { let (x, y) = p; return x + y; }\n" +
		"fn main() { let a = [1, 2, 3]; println!(\"{}\", sum((a[1], a[2]))); }"
	out := compile(t, code, false)
	be.True(t, strings.Contains(out, `printf("%d\n", sum((tuple_i32_i32){.f0 = a[1], .f1 = a[2]}));`))
}

func TestGenerateSettledParameter(t *testing.T) {
	code := "fn f(t) { let (a, b) = t; println!(\"{} {}\", a, b); }\nfn main() { f((1, true)); }"
	out := compile(t, code, false)
	callee := `void f(tuple_i32_bool t) {
    tuple_i32_bool __trust_t0 = t;
    int a = __trust_t0.f0;
    bool b = __trust_t0.f1;
`
	be.True(t, strings.Contains(out, callee))
	be.True(t, strings.Contains(out, "    f((tuple_i32_bool){.f0 = 1, .f1 = true});\n"))
}

func TestGenerateMainReturnsI32(t *testing.T) {
	out := compile(t, "fn main() -> i32 { return 3; }", false)
	be.True(t, strings.Contains(out, "int main(void) {\n    return 3;\n"))
}

func TestGenerateParameters(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			"array parameter",
			"fn first(a: [i32]) -> i32 { return a[1]; }\nfn main() { let arr = [1, 2, 3]; println!(\"{}\", first(arr)); }",
			[]string{"int first(int *a);", `printf("%d\n", first(arr));`},
		},
		{
			"nested array parameter",
			"fn g(m: [[i32; 2]]) -> i32 { return m[1][1]; }\nfn main() { let m = [[1, 2], [3, 4]]; println!(\"{}\", g(m)); }",
			[]string{"int g(int (*m)[2]);", "    int m[2][2] = {{1, 2}, {3, 4}};", "    return m[1][1];"},
		},
		{
			"inferred parameter",
			"fn twice(x) -> i32 { return x * 2; }\nfn main() { println!(\"{}\", twice(4)); }",
			[]string{"int twice(int x) {", "    return (x * 2);"},
		},
		{
			"inferred array parameter",
			"fn head(a) -> i32 { return a[1]; }\nfn main() { println!(\"{}\", head([7, 8])); }",
			[]string{"int head(int *a);", `printf("%d\n", head((int[2]){7, 8}));`},
		},
		{
			"void function",
			"fn show(b: bool) { println!(\"{}\", b); }\nfn main() { show(true); }",
			[]string{"void show(bool b);", "    show(true);"},
		},
		{
			"tuple return",
			"fn pair() -> (i32, bool) { return (1, false); }\nfn main() { let (n, f) = pair(); }",
			[]string{
				"tuple_i32_bool pair(void);",
				"    return (tuple_i32_bool){.f0 = 1, .f1 = false};",
				"    tuple_i32_bool __trust_t0 = pair();",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := compile(t, tt.code, false)
			for _, frag := range tt.want {
				if !strings.Contains(out, frag) {
					t.Errorf("output lacks %q:\n%s", frag, out)
				}
			}
		})
	}
}

func TestGenerateControlFlow(t *testing.T) {
	code := "fn main() { let mut i = 0; loop { if i >= 3 { break; } else { i = i + 1; } } let n = -5; println!(\"{} 100%\", n); }"
	out := compile(t, code, false)
	body := `    int i = 0;
    while (1) {
        if ((i >= 3)) {
            break;
        }
        else {
            i = (i + 1);
        }
    }
    int n = (-5);
    printf("%d 100%%\n", n);
    return 0;
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateElseIf(t *testing.T) {
	code := "fn sign(x: i32) -> i32 { if x < 0 { return -1; } else if x == 0 { return 0; } else { return 1; } }\n" +
		"fn main() { println!(\"{}\", sign(5)); }"
	out := compile(t, code, false)
	body := `int sign(int x) {
    if ((x < 0)) {
        return (-1);
    }
    else {
        if ((x == 0)) {
            return 0;
        }
        else {
            return 1;
        }
    }
}
`
	be.True(t, strings.Contains(out, body))
}

func TestGenerateIsDeterministic(t *testing.T) {
	code := "let t = (1, (2, true));\nfn f(a) -> (i32, bool) { return (a, true); }\nfn main() { let (x, y) = f(3); let z = [t; 2]; }"
	first := compile(t, code, false)
	for range 5 {
		be.Equal(t, compile(t, code, false), first)
	}
}

func TestGenerateRefusesDiagnostics(t *testing.T) {
	a := sema.AnalyzeFile("test.trust", "fn main() { let x = 5; x = 6; }", sema.Options{})
	out, err := Generate(a)
	be.True(t, errors.Is(err, ErrHasDiagnostics))
	be.Equal(t, out, "")

	_, err = GenerateProject(&sema.ProjectAnalysis{Main: a})
	be.Err(t, err, ErrHasDiagnostics)
	be.Err(t, err, "test.trust")
}

func TestRemoveRedundantBlankLines(t *testing.T) {
	be.Equal(t, removeRedundantBlankLines("a\n\n\n\nb\n\nc\n"), "a\n\nb\n\nc\n")
}
