package main

import (
    "dmaheapconsts/cli/cmd"
)

func main() {
    cmd.Execute()
}
