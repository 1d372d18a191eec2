package compose

import "github.com/anvil-build/anvil/internal/core/domain"

// flagInputs gathers the environment-conditional signals feeding flag
// composition. It is derived once per Compose call from the snapshot.
type flagInputs struct {
	noNativeArch bool
	noColor      bool
	sdkRoot      string
}

// gnuBuildTypeCompile holds the per-build-type compile flags of the GNU
// dialect. Debug carries no optimization token at all.
var gnuBuildTypeCompile = map[domain.BuildType][]string{
	domain.Debug:          {"-g", "-fno-omit-frame-pointer"},
	domain.Release:        {"-O3", "-DNDEBUG", "-flto"},
	domain.RelWithDebInfo: {"-O2", "-g", "-DNDEBUG"},
	domain.MinSizeRel:     {"-Os", "-DNDEBUG"},
}

var gnuBuildTypeLink = map[domain.BuildType][]string{
	domain.Release: {"-flto"},
}

var msvcBuildTypeCompile = map[domain.BuildType][]string{
	domain.Debug:          {"/Od", "/Zi"},
	domain.Release:        {"/O2", "/DNDEBUG", "/GL"},
	domain.RelWithDebInfo: {"/O2", "/Zi", "/DNDEBUG"},
	domain.MinSizeRel:     {"/O1", "/DNDEBUG"},
}

var msvcBuildTypeLink = map[domain.BuildType][]string{
	domain.Debug:          {"/DEBUG"},
	domain.Release:        {"/LTCG"},
	domain.RelWithDebInfo: {"/DEBUG"},
}

// composeFlags builds the compile and link flag sequences for one build
// type. Concatenation order is fixed: universal, architecture, build type,
// environment-conditional. The consuming toolchains apply last-flag-wins
// semantics, so later groups deliberately override earlier ones.
func composeFlags(desc domain.TargetDescriptor, bt domain.BuildType, in flagInputs) domain.FlagSet {
	if desc.Compiler == domain.CompilerClangCL {
		return composeMSVCFlags(desc, bt)
	}
	return composeGNUFlags(desc, bt, in)
}

func composeGNUFlags(desc domain.TargetDescriptor, bt domain.BuildType, in flagInputs) domain.FlagSet {
	// Universal flags. PE binaries are inherently relocatable and mingw
	// gcc warns on -fPIC, so it stays off on windows.
	compile := []string{"-fstack-protector-strong"}
	if desc.OS != domain.OSWindows {
		compile = append(compile, "-fPIC")
	}

	// Architecture flags.
	switch {
	case desc.Arch == domain.ArchX8664:
		compile = append(compile, "-march=x86-64", "-mtune=generic")
	case desc.OS == domain.OSMacOS:
		compile = append(compile, "-mcpu=apple-m1")
	default:
		compile = append(compile, "-march=armv8-a")
	}

	// Build-type flags.
	compile = append(compile, gnuBuildTypeCompile[bt]...)

	// Environment-conditional flags.
	if !in.noNativeArch {
		compile = append(compile, "-mtune=native")
	}
	if !in.noColor {
		compile = append(compile, "-fdiagnostics-color=always")
	}
	if desc.OS == domain.OSMacOS && in.sdkRoot != "" {
		compile = append(compile, "-isysroot", in.sdkRoot)
	}

	var link []string
	switch desc.OS {
	case domain.OSLinux:
		link = append(link, "-Wl,-z,relro", "-Wl,-z,now")
	case domain.OSWindows:
		link = append(link, "-Wl,--dynamicbase", "-Wl,--nxcompat")
	case domain.OSMacOS:
		// No universal hardening flags; the darwin linker enables them.
	}
	link = append(link, gnuBuildTypeLink[bt]...)
	if desc.OS == domain.OSMacOS && in.sdkRoot != "" {
		link = append(link, "-isysroot", in.sdkRoot)
	}

	return domain.FlagSet{Compile: compile, Link: link}
}

func composeMSVCFlags(desc domain.TargetDescriptor, bt domain.BuildType) domain.FlagSet {
	compile := []string{"/GS"}

	switch desc.Arch {
	case domain.ArchX8664:
		compile = append(compile, "--target=x86_64-pc-windows-msvc")
	case domain.ArchARM64:
		compile = append(compile, "--target=arm64-pc-windows-msvc")
	}

	compile = append(compile, msvcBuildTypeCompile[bt]...)

	// The MSVC dialect has no color or native tuning switches.
	link := []string{"/DYNAMICBASE", "/NXCOMPAT"}
	link = append(link, msvcBuildTypeLink[bt]...)

	return domain.FlagSet{Compile: compile, Link: link}
}
