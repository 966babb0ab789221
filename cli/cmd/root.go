//go:build linux
// +build linux

package cmd

import (
    "dmaheapconsts/pkg/report"
    "dmaheapconsts/pkg/uapi"
    "dmaheapconsts/pkg/util"
    "log"
    "os"

    "github.com/spf13/cobra"
)

// stdout 只留给三行结果 其余信息都走 stderr
var logger = log.New(os.Stderr, "", 0)

var rootCmd = &cobra.Command{
    Use:               "dmaheapconsts",
    Short:             "print DMA_HEAP_IOCTL_ALLOC, O_RDWR and O_CLOEXEC as built for this target",
    Long:              "print the dma-heap alloc ioctl request code and the open flags used with it\n\t./dmaheapconsts",
    Args:              cobra.NoArgs,
    PersistentPreRunE: persistentPreRunEFunc,
    RunE:              runFunc,
}

func persistentPreRunEFunc(command *cobra.Command, args []string) error {
    conf, err := getGlobalConf(command)
    if err != nil {
        return err
    }
    logger.SetOutput(command.ErrOrStderr())
    if !conf.Debug {
        return nil
    }
    u, err := util.GetOSUnamer()
    if err != nil {
        // 只影响调试信息
        logger.Printf("uname failed, error:%v", err)
    } else {
        logger.Printf("kernel:%s %s %s machine:%s", u.SysName, u.Release, u.Version, u.Machine)
    }
    logger.Printf("DMA_HEAP_IOCTL_ALLOC=%s", uapi.DMA_HEAP_IOCTL_ALLOC)
    return nil
}

func runFunc(command *cobra.Command, args []string) error {
    return report.Write(command.OutOrStdout(), report.Constants())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
    err := rootCmd.Execute()
    if err != nil {
        os.Exit(1)
    }
}

func init() {
    cobra.EnablePrefixMatching = false
    // 异常时只提示错误 不输出帮助信息
    rootCmd.SilenceUsage = true
    rootCmd.CompletionOptions.DisableDefaultCmd = true
    rootCmd.PersistentFlags().BoolVarP(&gconfig.Debug, "debug", "d", false, "log kernel and ioctl details to stderr")
}
