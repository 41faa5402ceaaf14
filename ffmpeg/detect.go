// Package ffmpeg provides functionality for detecting and driving FFmpeg.
// It includes capabilities for detecting the FFmpeg installation and its
// version across operating systems.
package ffmpeg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Private variables (alphabetical)

// ffmpegVersionRegex is used to detect FFmpeg version from version string.
// It extracts the numeric version (e.g., 4.4.1) from FFmpeg's version output.
var ffmpegVersionRegex = regexp.MustCompile(`(?i)(?:version|ffmpeg)\s+(?:n|\w)?(\d+\.\d+(?:\.\d+(?:\.\d+)?)?)`)

// Private functions (alphabetical)

// checkFFmpegExistence confirms if FFmpeg is installed on the system by
// searching for the executable. It first looks for ffmpeg in the user's
// PATH environment variable and then falls back to common installation
// directories for the current operating system.
func checkFFmpegExistence() (string, bool) {
	// Try to find FFmpeg in PATH
	pathCmd, err := exec.LookPath("ffmpeg")
	if err == nil {
		return pathCmd, true
	}

	// Get common paths and check each one
	var execName string
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	} else {
		execName = "ffmpeg"
	}
	for _, path := range getCommonInstallPaths(execName) {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns a list of common FFmpeg installation paths
// for the current OS. The execName parameter specifies the executable name
// to look for (e.g., "ffmpeg" or "ffmpeg.exe").
func getCommonInstallPaths(execName string) []string {
	var searchPaths []string
	switch runtime.GOOS {
	case "windows":
		// Windows common paths
		searchPaths = []string{
			filepath.Join("C:", "Program Files", "FFmpeg", "bin", execName),
			filepath.Join("C:", "Program Files (x86)", "FFmpeg", "bin", execName),
			filepath.Join("C:", "FFmpeg", "bin", execName),
		}

		// Add ProgramFiles path if environment variable is set
		programFiles := os.Getenv("ProgramFiles")
		if programFiles != "" {
			searchPaths = append(searchPaths, filepath.Join(programFiles, "FFmpeg", "bin", execName))
		}

	case "darwin":
		// macOS common paths
		searchPaths = []string{
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "local", "bin", execName),
			filepath.Join("/opt", "homebrew", "bin", execName),
		}
	default:
		// Linux/Unix common paths
		searchPaths = []string{
			filepath.Join("/usr", "bin", execName),
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "ffmpeg", "bin", execName),
		}
	}
	return searchPaths
}

// getFFmpegVersion retrieves the version string from the FFmpeg executable.
// It executes ffmpeg -version with a timeout and returns the raw output.
func getFFmpegVersion(ffmpegPath string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), GetDetectTimeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, ffmpegPath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return "", FormatError("error getting FFmpeg version: %w", err)
	}
	return string(output), nil
}

// parseVersion extracts the version number from FFmpeg's version output.
// It falls back to parsing the first output line when the regular
// expression does not match, and returns "unknown" when nothing can be
// extracted.
func parseVersion(versionOutput string) string {
	matches := ffmpegVersionRegex.FindStringSubmatch(versionOutput)
	if len(matches) >= 2 {
		return matches[1]
	}

	lines := strings.Split(versionOutput, "\n")
	if len(lines) > 0 {
		if version := parseVersionFromFirstLine(lines[0]); version != "" {
			return version
		}
	}

	return "unknown"
}

// parseVersionFromFirstLine parses the version string from the first line
// of FFmpeg output.
func parseVersionFromFirstLine(firstLine string) string {
	versionParts := strings.Split(firstLine, " version ")
	if len(versionParts) > 1 {
		remainingParts := strings.Split(versionParts[1], " ")
		if len(remainingParts) > 0 {
			// Extract only the version part (handle 'n' prefix and '-dev' suffix)
			versionStr := remainingParts[0]

			// Remove 'n' prefix if present (git versioning)
			versionStr = strings.TrimPrefix(versionStr, "n")

			// Remove development suffix if present (e.g., -dev-1234)
			if idx := strings.Index(versionStr, "-dev"); idx > 0 {
				versionStr = versionStr[:idx]
			}

			return versionStr
		}
	}

	return ""
}

// Public functions (alphabetical)

// FindFFmpeg locates and identifies the FFmpeg installation on the system.
// It returns an FFmpegInfo struct with the executable path and version.
// When FFmpeg cannot be found the struct reports Installed as false and
// the version as "unknown".
func FindFFmpeg() (*FFmpegInfo, error) {
	ffmpegPath, found := checkFFmpegExistence()
	if !found {
		return &FFmpegInfo{
			Installed: false,
			Version:   "unknown",
		}, nil
	}

	versionOutput, err := getFFmpegVersion(ffmpegPath)
	if err != nil {
		return &FFmpegInfo{
			Installed: false,
			Version:   "unknown",
		}, err
	}

	return &FFmpegInfo{
		Installed: true,
		Path:      ffmpegPath,
		Version:   parseVersion(versionOutput),
	}, nil
}
