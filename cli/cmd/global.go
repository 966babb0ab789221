package cmd

import (
    "github.com/spf13/cobra"
)

// GlobalFlags are flags that defined globally
// and are inherited to all sub-commands.
type GlobalFlags struct {
    Debug bool
}

var gconfig GlobalFlags

func getGlobalConf(command *cobra.Command) (conf GlobalFlags, err error) {
    conf.Debug, err = command.Flags().GetBool("debug")
    if err != nil {
        return
    }

    return
}
