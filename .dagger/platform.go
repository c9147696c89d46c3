package main

import "fmt"

// Platform is an OS/architecture pair wre-commit is released for.
type Platform struct {
	OS   string
	Arch string
}

// Platforms lists the released platforms. wre-commit relies on symlinks and
// shebangs, so only Unix systems are released.
var Platforms = []Platform{
	{OS: "linux", Arch: "386"},
	{OS: "linux", Arch: "amd64"},
	{OS: "linux", Arch: "arm"},
	{OS: "linux", Arch: "arm64"},
	{OS: "linux", Arch: "ppc64le"},
	{OS: "linux", Arch: "riscv64"},
	{OS: "linux", Arch: "s390x"},
	{OS: "darwin", Arch: "amd64"},
	{OS: "darwin", Arch: "arm64"},
	{OS: "freebsd", Arch: "amd64"},
}

// BinaryName returns the release asset name of the platform binary.
func (p Platform) BinaryName() string {
	return fmt.Sprintf("%s-%s-%s", repoName, p.OS, p.Arch)
}
