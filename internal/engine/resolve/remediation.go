package resolve

import (
	"fmt"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/engine/compose"
)

// mingwPackageArch maps target architectures to MSYS2 package name prefixes.
var mingwPackageArch = map[domain.Architecture]string{
	domain.ArchX8664: "mingw-w64-x86_64",
	domain.ArchARM64: "mingw-w64-aarch64",
}

// Remediation returns the ordered, concrete steps a user can take to make
// an unresolvable target resolvable. Values are examples, not guesses about
// the user's machine.
func Remediation(desc domain.TargetDescriptor) []string {
	switch domain.PairKey(desc.OS, desc.Compiler) {
	case "windows/mingw":
		return []string{
			"Install MSYS2 at C:/msys64 (https://www.msys2.org)",
			fmt.Sprintf("Install the compiler inside MSYS2: pacman -S --needed %s-gcc", mingwPackageArch[desc.Arch]),
			"Or point at an existing installation, e.g. set TOOLROOT=C:/msys64",
		}
	case "windows/clang-cl":
		return []string{
			"Install LLVM (https://releases.llvm.org), e.g. winget install LLVM.LLVM",
			`Or point at an existing installation, e.g. set TOOLROOT=C:/Program Files/LLVM`,
		}
	case "linux/gcc":
		return []string{
			"Install gcc with your package manager, e.g. apt install build-essential",
			"Or point at an existing installation, e.g. export TOOLROOT=/usr",
		}
	case "linux/clang":
		return []string{
			"Install clang with your package manager, e.g. apt install clang",
			"Or point at an existing installation, e.g. export TOOLROOT=/opt/llvm",
		}
	case "macos/clang":
		return []string{
			"Install the Xcode command line tools: xcode-select --install",
			"Or install LLVM via Homebrew: brew install llvm",
			"Or point at an existing installation, e.g. export TOOLROOT=/Library/Developer/CommandLineTools",
		}
	default:
		return UnsupportedRemediation(desc)
	}
}

// UnsupportedRemediation explains an unsupported combination. Installing
// tools cannot fix these; only requesting a supported tuple can.
func UnsupportedRemediation(desc domain.TargetDescriptor) []string {
	steps := []string{
		fmt.Sprintf("No toolchain support exists for %s", desc),
		"Request one of the supported combinations:",
	}
	for _, combo := range compose.SupportedCombinations() {
		steps = append(steps, "  "+combo)
	}
	return steps
}
