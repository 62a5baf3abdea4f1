/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package main

import "github.com/ovrinda/shipctl/pkg/cli"

func main() {
	cli.Execute()
}
