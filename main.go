/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/
package main

import "github.com/dimasma0305/linearcli/cmd"

func main() {
	cmd.Execute()
}
