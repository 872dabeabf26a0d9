package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
    ____  _____(_)________ ___
   / __ \/ ___/ / ___/ __ ` + "`" + `__ \
  / /_/ / /  / (__  ) / / / / /
 / .___/_/  /_/____/_/ /_/ /_/
/_/
`
