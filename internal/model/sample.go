package model

// SampleReport is a Cadence/PrimeTime-flavoured setup report used by the
// web UI's "load example" button and as the fallback when an upstream
// fetch fails. The header comment marks it as sample data so a user never
// mistakes it for a live report.
const SampleReport = `############################################################
# Timing report -- setup check (SAMPLE DATA)
# This is built-in example data, not a live report.
############################################################

Path 1: VIOLATED Setup Check with Pin core/memory_controller/addr_reg[12]/D
Startpoint: core/register_file/register_memory_reg[7][12]/Q (rising edge-triggered flip-flop clocked by clk)
Endpoint: core/memory_controller/addr_reg[12]/D (rising edge-triggered flip-flop clocked by clk)
Path Group: clk
Path Type: max

  Point                                          Incr      Path
  ----------------------------------------------------------------
  clock clk (rise edge)                         0.000     0.000
  core/register_file/register_memory_reg[7][12]/CK (DFFX1_RVT)
                                                0.000     0.000 r
  core/register_file/register_memory_reg[7][12]/Q (DFFX1_RVT)
                                                0.124     0.124 f
  core/register_file/U1023/Y (INVX0_RVT)        0.065     0.189 r
  core/register_file/U1044/Y (NAND2X0_RVT)      0.073     0.262 f
  core/rf_mux/U2381/Y (AOI22X1_RVT)             0.088     0.350 r
  core/rf_mux/U2384/Y (OAI21X1_RVT)             0.071     0.421 f
  core/memory_controller/U411/Y (INVX0_RVT)     0.059     0.480 r
  core/memory_controller/U415/Y (BUFX2_RVT)     0.092     0.572 r
  core/memory_controller/addr_reg[12]/D         0.000     0.572 r
  data arrival time                                       0.572

  clock clk (rise edge)                         0.500     0.500
  clock network delay (propagated)              0.045     0.545
  clock uncertainty                            -0.050     0.495
  core/memory_controller/addr_reg[12]/CK        0.000     0.495 r
  library setup time                           -0.028     0.467
  data required time                                      0.467
  ----------------------------------------------------------------
  data required time                                      0.467
  data arrival time                                      -0.572
  ----------------------------------------------------------------
  slack (VIOLATED)                                       -0.045
`
