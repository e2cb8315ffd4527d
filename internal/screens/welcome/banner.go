package welcome

// bannerArt is the splash logo.
const bannerArt = `██████╗ ██╗███████╗██╗  ██╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
██╔══██╗██║██╔════╝██║ ██╔╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
██████╔╝██║███████╗█████╔╝ ██║     ███████║█████╗  ██║     █████╔╝
██╔══██╗██║╚════██║██╔═██╗ ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
██║  ██║██║███████║██║  ██╗╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

// tagline shown under the logo.
const tagline = "AI Development Readiness Assessment"
