package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// 参与者随机昵称词典: 形容词-颜色-国家
var (
	nameAdjectives = []string{
		"brave", "calm", "clever", "curious", "eager", "fancy", "gentle",
		"glowing", "happy", "jolly", "keen", "lively", "lucky", "mighty",
		"noble", "proud", "quick", "quiet", "silent", "smooth", "swift",
		"vivid", "wild", "wise", "zesty",
	}
	nameColors = []string{
		"amber", "aqua", "azure", "beige", "coral", "crimson", "cyan",
		"emerald", "golden", "indigo", "ivory", "jade", "lavender", "lime",
		"magenta", "maroon", "olive", "pearl", "ruby", "salmon", "scarlet",
		"silver", "teal", "violet", "white",
	}
	nameCountries = []string{
		"argentina", "brazil", "canada", "chile", "denmark", "egypt",
		"finland", "france", "germany", "greece", "iceland", "india",
		"italy", "japan", "kenya", "mexico", "nepal", "norway", "peru",
		"poland", "portugal", "spain", "sweden", "thailand", "vietnam",
	}
)

// GenerateUniqueString 生成32位十六进制的参与者身份密钥
func GenerateUniqueString() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateRandomName 生成"形容词-颜色-国家"形式的随机昵称
func GenerateRandomName() string {
	parts := []string{
		nameAdjectives[randomIndex(len(nameAdjectives))],
		nameColors[randomIndex(len(nameColors))],
		nameCountries[randomIndex(len(nameCountries))],
	}
	return strings.Join(parts, "-")
}

// randomIndex 返回 [0, n) 范围内的安全随机下标
func randomIndex(n int) int {
	var num uint32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random index failed")
	}
	return int(num % uint32(n))
}
