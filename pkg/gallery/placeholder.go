package gallery

import "encoding/base64"

const videoPlaceholderSVG = `<svg width="400" height="300" viewBox="0 0 400 300" fill="none" xmlns="http://www.w3.org/2000/svg">
<rect width="400" height="300" fill="#f0f0f0"/>
<circle cx="200" cy="150" r="30" fill="#333"/>
<path d="M185 135L215 150L185 165V135Z" fill="white"/>
<text x="200" y="200" text-anchor="middle" fill="#666" font-family="Arial" font-size="16">视频文件</text>
</svg>`

// VideoPlaceholderURL is a data URL used as the thumbnail for videos.
var VideoPlaceholderURL = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(videoPlaceholderSVG))
