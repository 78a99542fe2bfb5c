package main

const (
	dirPerms = 0o755
	version  = "0.1.0"

	nativeAudioDirName = "audio_native"
	userAudioDirName   = "audio_user"
)

// Created in this order under the project root.
var audioDirNames = []string{nativeAudioDirName, userAudioDirName}

type Config struct {
	ProjectRoot string
}
