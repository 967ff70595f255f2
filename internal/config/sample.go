package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# molview configuration
version: "1.0"

viewer:
  # Canvas size in pixels; the panel adds 280px of width
  width: 800
  height: 600
  background: "#FFFFFF"
  # Structure list and layout buttons
  panel: false
  show_sequence: false
  show_animation: false
  # Molstar bundle, override to pin a version or serve it locally
  molstar_js: https://cdn.jsdelivr.net/npm/molstar@latest/build/viewer/molstar.js
  molstar_css: https://cdn.jsdelivr.net/npm/molstar@latest/build/viewer/molstar.css

fetch:
  files_url: https://files.rcsb.org/download
  search_url: https://search.rcsb.org/rcsbsearch/v2/query
  alphafold_url: https://alphafold.ebi.ac.uk/files
  alphafold_version: 4
  max_results: 10

style:
  # element, custom, residue, chain, secondary, rainbow or plddt
  color_mode: element
  # custom: a single color
  # color: "#FF6600"
  # rainbow: a palette name (see "molview palettes")
  palette: rainbow
  # secondary
  # helix_color: "#FF0080"
  # sheet_color: "#FFC800"
  # coil_color: "#FFFFFF"
  # chain: explicit chain colors
  # custom_colors:
  #   A: red
  #   B: "#00FF00"
  representations: [cartoon]
  surface_opacity: 40
  spin_speed: 0.2

output:
  # text, json or markdown
  default_format: text
  # auto, always or never
  color_mode: auto
  # Where "molview view --output" pages are written
  directory: .
  verbose: false
  emoji: true
`
}

// MinimalSampleConfig returns a configuration file with essential settings only
func MinimalSampleConfig() string {
	return `version: "1.0"
viewer:
  width: 800
  height: 600
style:
  color_mode: element
output:
  default_format: text
`
}
