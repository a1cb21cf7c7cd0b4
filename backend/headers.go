package codegen

func headers(cg *Codegen) {
	cg.ln("#include <stdio.h>")
	cg.ln("#include <stdbool.h>")
}
