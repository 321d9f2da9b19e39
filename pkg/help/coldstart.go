package help

const ColdstartYAML = `# spyglass Quick Start

commands:
  interactive: |
    spyglass
  basic_sheet: |
    spyglass --nation Testlandia
  minimized_sheet: |
    spyglass -n Testlandia -m -o minimal.xlsx
  fixed_lengths: |
    spyglass -n Testlandia --minor-speed 3550 --major-speed 5350
  reuse_dump: |
    spyglass -n Testlandia --stale
    spyglass -n Testlandia --max-age 12h
  yaml_output: |
    spyglass -n Testlandia -o sheet.yaml
  measure_lengths: |
    spyglass updtime -n Testlandia
  list_runs: |
    spyglass runs --limit 10

columns:
  regions: "Region name; ~ marks a hittable region, * a passworded one"
  region_link: "HYPERLINK to the region page"
  nations: "Nations in the region"
  tot_nations: "Nations updated before this region"
  minor_upd: "Estimated offset into minor update (H:M:S)"
  major_upd: "Observed offset into major update, or estimated with --major-speed"
  del_votes: "Delegate votes"
  del_endos: "Delegate endorsements; -1 with a red fill means no delegate"
  embassies: "Embassy regions (omitted with -m)"
  wfe: "World factbook entry (omitted with -m)"
  officers: "Regional officers (omitted with -m)"

highlights:
  yellow: "Unlocked with an executive delegate"
  green: "Unlocked and founderless"
  red: "Passworded"

defaults_file: |
  # spyglass.yaml, read from the working directory (or --config)
  nation: Testlandia
  out_file: sheet.xlsx
  minor_seconds: 3550
  major_seconds: 5350   # omit to use the dump's update times
  minimize: false
  dump_path: regions.xml.gz
  log_file: debug.log

key_files:
  - "regions.xml.gz (cached data dump, --dump-path)"
  - "debug.log (appended on every run, -l / -s)"
  - "spyglass.db (run ledger, --db / --no-ledger)"

error_behavior:
  - "Unknown nation: stops before any download"
  - "Malformed dump or zero population: no sheet is written"
  - "Sheets are written to a temp file and renamed into place"
  - "Exit codes: 0=success, 1=run failed, 2=bad setup"
`
