/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/mchmarny/vergate/pkg/cli"
)

func main() {
	cli.Execute()
}
