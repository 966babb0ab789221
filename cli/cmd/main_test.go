//go:build linux
// +build linux

package cmd

import (
    "errors"
    "os"
    "os/exec"
    "strings"
    "testing"

    "github.com/stretchr/testify/require"
)

const execEnv = "DMAHEAPCONSTS_EXEC_ARGS"

// 子进程中直接走 Execute 用来检查真实的退出码
func TestMain(m *testing.M) {
    if args, ok := os.LookupEnv(execEnv); ok {
        os.Args = append([]string{"dmaheapconsts"}, strings.Fields(args)...)
        Execute()
        os.Exit(0)
    }
    os.Exit(m.Run())
}

func execBinary(t *testing.T, args ...string) (string, int) {
    t.Helper()
    c := exec.Command(os.Args[0])
    c.Env = append(os.Environ(), execEnv+"="+strings.Join(args, " "))
    out, err := c.Output()
    if err == nil {
        return string(out), 0
    }
    var exitErr *exec.ExitError
    require.True(t, errors.As(err, &exitErr), "unexpected error: %v", err)
    return string(out), exitErr.ExitCode()
}

func TestExecuteExitStatus(t *testing.T) {
    out, code := execBinary(t)
    require.Equal(t, 0, code)
    require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3)

    out, code = execBinary(t, "extra")
    require.Equal(t, 1, code)
    require.Empty(t, out)
}
