package cdf

// BuiltinCatalog is the static field table for Project CARS CDFbin vehicle
// definition files. Markers and payload layouts were recovered by community
// reverse engineering; entries named CDF_UNKN_* or Unkn_* locate fields whose
// purpose is not yet known. Extend via a catalog sidecar file (LoadDefs)
// rather than editing this table.
var BuiltinCatalog = Catalog{
	// GENERAL
	def("GENERAL", "GarageDisplayFlags", "20 9A 30 40 34", Layout{Byte}, "GarageDisplayFlags={byte}"),
	def("GENERAL", "FeelerFlags", "20 96 5B FF BF", Layout{Byte}, "FeelerFlags={byte}"),
	def("GENERAL", "Mass", "22 67 0B 57 AB", Layout{Float32}, "Mass={float}"),
	def("GENERAL", "Inertia", "24 BB B3 9F 0B A3 02", Layout{Float32, Float32, Float32}, "Inertia=(f,f,f)"),
	def("GENERAL", "FuelTankPos", "24 A0 53 0C 50 83 02", Layout{Byte, Float32, Float32}, "FuelTankPos=(byte,f,f)"),
	def("GENERAL", "FuelTankMotion", "24 6F 70 F3 C7 A2", Layout{Float32, Float32}, "FuelTankMotion=(f,f)"),
	def("GENERAL", "CDF_UNKN_001", "26 3A 17 96 C2", Layout{Byte}, "CDF_UNKN_001={byte}"),
	def("GENERAL", "Symmetric", "20 38 05 5C 3C", Layout{Byte}, "Symmetric={byte}"),
	def("GENERAL", "CGHeight", "22 18 24 EA A8", Layout{Float32}, "CGHeight={float}"),
	def("GENERAL", "CGRightRange", "24 DF 8D 93 CF 23 00", Layout{Float32, Byte, Byte}, "CGRightRange=(f,b,b)"),
	def("GENERAL", "CGRightSetting", "28 00 9D 8A CF", nil, "CGRightSetting=default"),
	def("GENERAL", "CGRearRange", "24 BE BA 67 7B 23 00", Layout{Float32, Byte, Byte}, "CGRearRange=(f,b,b)"),
	def("GENERAL", "CGRearSetting", "28 D4 4C 53 C4", nil, "CGRearSetting=default"),
	def("GENERAL", "Unkn_0x221E5C8F56", "22 1E 5C 8F 56", Layout{Float32}, "Unkn_0x221E5C8F56={float}"),
	def("GENERAL", "GraphicalOffset", "24 86 9A 77 97 03 00", Layout{Byte, Byte, Byte}, "GraphicalOffset=(b,b,b)"),
	def("GENERAL", "CollisionOffset", "24 D2 CF F4 3D 03 00", Layout{Byte, Byte, Byte}, "CollisionOffset=(b,b,b)"),
	def("GENERAL", "UndertrayZeroZero", "24 E9 DE D9 99 23 02", Layout{Float32, Byte, Float32}, "UndertrayZeroZero=(f,b,f)"),
	def("GENERAL", "UndertrayZeroOne", "24 BA 61 42 62 23 02", Layout{Float32, Byte, Float32}, "UndertrayZeroOne=(f,b,f)"),
	def("GENERAL", "UndertrayZeroTwo", "24 AC 8D E9 39 23 02", Layout{Float32, Byte, Float32}, "UndertrayZeroTwo=(f,b,f)"),
	def("GENERAL", "UndertrayZeroThree", "24 C7 C2 3D 06 23 02", Layout{Float32, Byte, Float32}, "UndertrayZeroThree=(f,b,f)"),
	def("GENERAL", "UndertrayParams", "24 86 AE 66 2B 53 02", Layout{Int32, Int32, Float32}, "UndertrayParams=(i,i,f)"),
	def("GENERAL", "DryTireCompoundSetting", "26 E4 A7 89 37", Layout{Byte}, "DryTireCompoundSetting={byte}"),
	def("GENERAL", "WetTireCompoundSetting", "26 7B 83 4D 10", Layout{Byte}, "WetTireCompoundSetting={byte}"),
	def("GENERAL", "IceTireCompoundSetting", "26 A4 F8 37 C0", Layout{Byte}, "IceTireCompoundSetting={byte}"),
	def("GENERAL", "AllTerrainTireCompoundSetting", "26 F7 FA A8 5D", Layout{Byte}, "AllTerrainTireCompoundSetting={byte}"),
	def("GENERAL", "FuelRange", "24 19 38 99 74 A3 00", Layout{Float32, Float32, Byte}, "FuelRange=(f,f,b)"),
	def("GENERAL", "FuelSetting", "20 99 F0 BB F8", Layout{Byte}, "FuelSetting={byte}"),
	def("GENERAL", "NumPitstopsRange", "24 F7 05 73 EA 03 00", Layout{Byte, Byte, Byte}, "NumPitstopsRange=(b,b,b)"),
	def("GENERAL", "NumPitstopsSetting", "20 6D DE 02 E8", Layout{Byte}, "NumPitstopsSetting={byte}"),
	def("GENERAL", "PitstopOneRange", "24 9B FA 80 6D 83 00", Layout{Byte, Float32, Byte}, "PitstopOneRange=(b,f,b)"),
	def("GENERAL", "PitstopOneSetting", "20 03 EE A8 65", Layout{Byte}, "PitstopOneSetting={byte}"),
	def("GENERAL", "PitstopTwoRange", "24 55 DE D0 64 83 00", Layout{Byte, Float32, Byte}, "PitstopTwoRange=(b,f,b)"),
	def("GENERAL", "PitstopTwoSetting", "20 85 22 52 46", Layout{Byte}, "PitstopTwoSetting={byte}"),
	def("GENERAL", "PitstopThreeRange", "24 E8 12 23 11 83 00", Layout{Byte, Float32, Byte}, "PitstopThreeRange=(b,f,b)"),
	def("GENERAL", "PitstopThreeSetting", "20 26 BA 51 7D", Layout{Byte}, "PitstopThreeSetting={byte}"),
	def("GENERAL", "AIMinPassesPerTick", "20 BB 1F 05 F3", Layout{Byte}, "AIMinPassesPerTick={byte}"),
	def("GENERAL", "AIRotationThreshold", "22 26 A9 8C 99", Layout{Float32}, "AIRotationThreshold={float}"),
	def("GENERAL", "AIEvenSuspension", "22 79 F4 A6 98", Layout{Float32}, "AIEvenSuspension={float}"),
	def("GENERAL", "AISpringRate", "22 BC C7 CE E7", Layout{Float32}, "AISpringRate={float}"),
	def("GENERAL", "AIDamperSlow", "22 2B 3F F8 6B", Layout{Float32}, "AIDamperSlow={float}"),
	def("GENERAL", "AIDamperFast", "22 C4 89 77 69", Layout{Float32}, "AIDamperFast={float}"),
	def("GENERAL", "AIDownforceZArm", "22 88 76 9A ED", Layout{Float32}, "AIDownforceZArm={float}"),
	def("GENERAL", "AIDownforceBias", "22 15 6B 48 37", Layout{Float32}, "AIDownforceBias={float}"),
	def("GENERAL", "AITorqueStab", "24 2E 5D 54 E4 A3 02", Layout{Float32, Float32, Float32}, "AITorqueStab=(f,f,f)"),

	// FRONT WING
	def("FRONT WING", "FWRange", "24 AD 3C 20 13 83 00", Layout{Byte, Float32, Byte}, "FWRange=(b,f,b)"),
	def("FRONT WING", "FWSetting", "20 06 A3 1F 94", Layout{Byte}, "FWSetting={byte}"),
	def("FRONT WING", "FWMaxHeight", "24 09 A8 52 D9 21", Layout{Float32}, "FWMaxHeight={float}"),
	def("FRONT WING", "FWDragParams", "24 2C FB 70 DA A3 02", Layout{Float32, Float32, Float32}, "FWDragParams=(f,f,f)"),
	def("FRONT WING", "FWLiftParams", "24 23 EC 21 2A A3 02", Layout{Float32, Float32, Float32}, "FWLiftParams=(f,f,f)"),
	def("FRONT WING", "FWLiftHeight", "24 06 F4 58 AC 21", Layout{Float32}, "FWLiftHeight={float}"),
	def("FRONT WING", "FWLiftSideways", "24 96 D3 8A 17 21", Layout{Float32}, "FWLiftSideways={float}"),
	def("FRONT WING", "FWLeft", "24 54 6C CD BF A3 02", Layout{Float32, Float32, Float32}, "FWLeft=(f,f,f)"),
	def("FRONT WING", "FWRight", "24 C5 19 77 0C A3 02", Layout{Float32, Float32, Float32}, "FWRight=(f,f,f)"),
	def("FRONT WING", "FWUp", "24 CD 98 5A 4C A3 02", Layout{Float32, Float32, Float32}, "FWUp=(f,f,f)"),
	def("FRONT WING", "FWDown", "24 82 6E D8 E3 A3 02", Layout{Float32, Float32, Float32}, "FWDown=(f,f,f)"),
	def("FRONT WING", "FWAft", "24 E4 3E 99 D8 A3 02", Layout{Float32, Float32, Float32}, "FWAft=(f,f,f)"),
	def("FRONT WING", "FWFore", "24 F5 42 E8 78 A3 02", Layout{Float32, Float32, Float32}, "FWFore=(f,f,f)"),
	def("FRONT WING", "FWRot", "24 3D FD AB 72 A3 02", Layout{Float32, Float32, Float32}, "FWRot=(f,f,f)"),
	def("FRONT WING", "FWCenter", "24 EB DD A8 12 A3 02", Layout{Float32, Float32, Float32}, "FWCenter=(f,f,f)"),

	// FRONT RIGHT WING
	def("FRONT RIGHT WING", "FRWRange", "24 96 A7 D0 8D 83 00", Layout{Byte, Float32, Byte}, "FRWRange=(b,f,b)"),
	def("FRONT RIGHT WING", "FRWSetting", "20 B5 E8 1B 09", Layout{Byte}, "FRWSetting={byte}"),
	def("FRONT RIGHT WING", "FRWMaxHeight", "24 29 1A 69 42 21", Layout{Float32}, "FRWMaxHeight={float}"),
	def("FRONT RIGHT WING", "FRWDragParams", "24 CF 8B E1 A1 A3 02", Layout{Float32, Float32, Float32}, "FRWDragParams=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWLiftParams", "24 76 29 1C 37 A3 02", Layout{Float32, Float32, Float32}, "FRWLiftParams=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWLiftHeight", "24 4B 1A 06 AD 21", Layout{Float32}, "FRWLiftHeight={float}"),
	def("FRONT RIGHT WING", "FRWLiftSideways", "24 81 05 80 FE 21", Layout{Float32}, "FRWLiftSideways={float}"),
	def("FRONT RIGHT WING", "FRWLeft", "24 A3 72 BD EE A3 02", Layout{Float32, Float32, Float32}, "FRWLeft=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWRight", "24 E3 C5 15 C2 A3 02", Layout{Float32, Float32, Float32}, "FRWRight=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWUp", "24 68 D5 13 6E A3 02", Layout{Float32, Float32, Float32}, "FRWUp=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWDown", "24 41 68 8B 03 A3 02", Layout{Float32, Float32, Float32}, "FRWDown=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWAft", "24 57 1E 68 BD A3 02", Layout{Float32, Float32, Float32}, "FRWAft=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWFore", "24 91 B8 03 C5 A3 02", Layout{Float32, Float32, Float32}, "FRWFore=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWRot", "24 7B 00 64 6A A3 02", Layout{Float32, Float32, Float32}, "FRWRot=(f,f,f)"),
	def("FRONT RIGHT WING", "FRWCenter", "24 87 7F E1 43 A3 02", Layout{Float32, Float32, Float32}, "FRWCenter=(f,f,f)"),

	// REAR WING
	def("REAR WING", "RWRange", "24 15 76 54 86 83 00", Layout{Byte, Float32, Byte}, "RWRange=(b,f,b)"),
	def("REAR WING", "RWSetting", "20 8A 98 EB 35", Layout{Byte}, "RWSetting={byte}"),
	def("REAR WING", "RWDragParams", "24 67 DC B6 B3 A3 02", Layout{Float32, Float32, Float32}, "RWDragParams=(f,f,f)"),
	def("REAR WING", "RWLiftParams", "24 83 D3 85 B9 A3 02", Layout{Float32, Float32, Float32}, "RWLiftParams=(f,f,f)"),
	def("REAR WING", "RWLiftSideways", "24 7A 8F 77 C8 21", Layout{Float32}, "RWLiftSideways={float}"),
	def("REAR WING", "RWPeakYaw", "24 15 2E 20 37 A2", Layout{Float32, Float32}, "RWPeakYaw=(f,f)"),
	def("REAR WING", "RWLeft", "24 34 3E C4 2F A3 02", Layout{Float32, Float32, Float32}, "RWLeft=(f,f,f)"),
	def("REAR WING", "RWRight", "24 42 3B C2 6A A3 02", Layout{Float32, Float32, Float32}, "RWRight=(f,f,f)"),
	def("REAR WING", "RWUp", "24 EF B4 24 0A A3 02", Layout{Float32, Float32, Float32}, "RWUp=(f,f,f)"),
	def("REAR WING", "RWDown", "24 65 F8 14 22 A3 02", Layout{Float32, Float32, Float32}, "RWDown=(f,f,f)"),
	def("REAR WING", "RWAft", "24 69 EC ED 3E A3 02", Layout{Float32, Float32, Float32}, "RWAft=(f,f,f)"),
	def("REAR WING", "RWFore", "24 D5 07 F8 FE A3 02", Layout{Float32, Float32, Float32}, "RWFore=(f,f,f)"),
	def("REAR WING", "RWRot", "24 08 4B 50 B3 A3 02", Layout{Float32, Float32, Float32}, "RWRot=(f,f,f)"),
	def("REAR WING", "RWCenter", "24 17 44 ED 31 A3 02", Layout{Float32, Float32, Float32}, "RWCenter=(f,f,f)"),

	// REAR RIGHT WING
	def("REAR RIGHT WING", "RRWRange", "24 1F 3D 69 0C 03 00", Layout{Byte, Byte, Byte}, "RRWRange=(b,b,b)"),
	def("REAR RIGHT WING", "RRWSetting", "28 85 98 3C 01", nil, "RRWSetting=default"),
	def("REAR RIGHT WING", "RRWDragParams", "24 6B 20 03 55 23 00", Layout{Float32, Byte, Byte}, "RRWDragParams=(f,b,b)"),
	def("REAR RIGHT WING", "RRWLiftParams", "24 B8 2D 4D C4 03 00", Layout{Byte, Byte, Byte}, "RRWLiftParams=(b,b,b)"),
	def("REAR RIGHT WING", "RRWLiftSideways", "24 0A 2B 9B 22 01", Layout{Byte}, "RRWLiftSideways={byte}"),
	def("REAR RIGHT WING", "RRWPeakYaw", "24 BD CD 13 89 02", Layout{Byte, Byte}, "RRWPeakYaw=(b,b)"),
	def("REAR RIGHT WING", "RRWLeft", "24 22 45 69 35 03 00", Layout{Byte, Byte, Byte}, "RRWLeft=(b,b,b)"),
	def("REAR RIGHT WING", "RRWRight", "24 51 1B 19 80 03 00", Layout{Byte, Byte, Byte}, "RRWRight=(b,b,b)"),
	def("REAR RIGHT WING", "RRWUp", "24 86 1A F2 5C 03 00", Layout{Byte, Byte, Byte}, "RRWUp=(b,b,b)"),
	def("REAR RIGHT WING", "RRWDown", "24 51 EE 77 72 03 00", Layout{Byte, Byte, Byte}, "RRWDown=(b,b,b)"),
	def("REAR RIGHT WING", "RRWAft", "24 46 77 39 74 03 00", Layout{Byte, Byte, Byte}, "RRWAft=(b,b,b)"),
	def("REAR RIGHT WING", "RRWFore", "24 2B 7E E4 47 03 00", Layout{Byte, Byte, Byte}, "RRWFore=(b,b,b)"),
	def("REAR RIGHT WING", "RRWRot", "24 99 E7 CC 64 03 00", Layout{Byte, Byte, Byte}, "RRWRot=(b,b,b)"),
	def("REAR RIGHT WING", "RRWCenter", "24 8D 6C 15 A3 83 02", Layout{Byte, Float32, Float32}, "RRWCenter=(b,f,f)"),

	// BODY AERO
	def("BODY AERO", "BodyDragBase", "24 33 63 ED FD 21", Layout{Float32}, "BodyDragBase={float}"),
	def("BODY AERO", "BodyDragHeightAvg", "24 67 CA A0 92 21", Layout{Float32}, "BodyDragHeightAvg={float}"),
	def("BODY AERO", "BodyDragHeightDiff", "24 1F 13 C1 85 21", Layout{Float32}, "BodyDragHeightDiff={float}"),
	def("BODY AERO", "BodyMaxHeight", "24 56 E0 A3 AB 21", Layout{Float32}, "BodyMaxHeight={float}"),
	def("BODY AERO", "BodyLeft", "24 C5 A5 4E CE A3 02", Layout{Float32, Float32, Float32}, "BodyLeft=(f,f,f)"),
	def("BODY AERO", "BodyRight", "24 6A 08 2A D4 A3 02", Layout{Float32, Float32, Float32}, "BodyRight=(f,f,f)"),
	def("BODY AERO", "BodyUp", "24 DC 57 D2 48 A3 02", Layout{Float32, Float32, Float32}, "BodyUp=(f,f,f)"),
	def("BODY AERO", "BodyDown", "24 E3 A1 65 97 A3 02", Layout{Float32, Float32, Float32}, "BodyDown=(f,f,f)"),
	def("BODY AERO", "BodyAft", "24 08 B1 B6 50 A3 02", Layout{Float32, Float32, Float32}, "BodyAft=(f,f,f)"),
	def("BODY AERO", "BodyFore", "24 DC 2F 52 E4 A3 02", Layout{Float32, Float32, Float32}, "BodyFore=(f,f,f)"),
	def("BODY AERO", "BodyRot", "24 F8 26 31 A8 A3 02", Layout{Float32, Float32, Float32}, "BodyRot=(f,f,f)"),
	def("BODY AERO", "BodyCenter", "24 38 D1 8E E7 A3 02", Layout{Float32, Float32, Float32}, "BodyCenter=(f,f,f)"),
	def("BODY AERO", "RadiatorRange", "24 8E 02 D1 67 83 00", Layout{Byte, Float32, Byte}, "RadiatorRange=(b,f,b)"),
	def("BODY AERO", "RadiatorSetting", "20 F7 CF 3C A8", Layout{Byte}, "RadiatorSetting={byte}"),
	def("BODY AERO", "RadiatorDrag", "24 CD 9B D5 4E 21", Layout{Float32}, "RadiatorDrag={float}"),
	def("BODY AERO", "RadiatorLift", "24 0A 98 AA BD 21", Layout{Float32}, "RadiatorLift={float}"),
	def("BODY AERO", "BrakeDuctRange", "24 67 64 39 31 83 00", Layout{Byte, Float32, Byte}, "BrakeDuctRange=(b,f,b)"),
	def("BODY AERO", "BrakeDuctSetting", "20 CF 01 35 71", Layout{Byte}, "BrakeDuctSetting={byte}"),
	def("BODY AERO", "BrakeDuctDrag", "24 50 2D C5 AE 21", Layout{Float32}, "BrakeDuctDrag={float}"),
	def("BODY AERO", "BrakeDuctLift", "24 B7 28 36 3E 21", Layout{Float32}, "BrakeDuctLift={float}"),

	// DIFFUSER
	def("DIFFUSER", "DiffuserBase", "24 BE 0F 28 99 A3 02", Layout{Float32, Float32, Float32}, "DiffuserBase=(f,f,f)"),
	def("DIFFUSER", "DiffuserFrontHeight", "24 47 D0 B1 DE 21", Layout{Float32}, "DiffuserFrontHeight={float}"),
	def("DIFFUSER", "DiffuserRake", "24 20 B9 8D FF A3 02", Layout{Float32, Float32, Float32}, "DiffuserRake=(f,f,f)"),
	def("DIFFUSER", "DiffuserLimits", "24 FF 59 46 C8 A3 02", Layout{Float32, Float32, Float32}, "DiffuserLimits=(f,f,f)"),
	def("DIFFUSER", "DiffuserStall", "24 E0 A1 25 DE A2", Layout{Float32, Float32}, "DiffuserStall=(f,f)"),
	def("DIFFUSER", "DiffuserSideways", "24 E1 76 32 24 21", Layout{Float32}, "DiffuserSideways={float}"),
	def("DIFFUSER", "DiffuserCenter", "24 B8 97 56 8E A3 02", Layout{Float32, Float32, Float32}, "DiffuserCenter=(f,f,f)"),

	// SUSPENSION
	def("SUSPENSION", "AdjustSuspRates", "20 7D E0 90 64", Layout{Byte}, "AdjustSuspRates={byte}"),
	def("SUSPENSION", "AlignWheels", "20 B2 B4 93 40", Layout{Byte}, "AlignWheels={byte}"),
	def("SUSPENSION", "SpringBasedAntiSway", "20 26 E9 82 B6", Layout{Byte}, "SpringBasedAntiSway={byte}"),
	def("SUSPENSION", "FrontAntiSwayBase", "28 89 92 C5 F3", nil, "FrontAntiSwayBase=default"),
	def("SUSPENSION", "FrontAntiSwayRange", "24 E5 B9 A9 D6 A3 00", Layout{Float32, Float32, Byte}, "FrontAntiSwayRange=(f,f,b)"),
	def("SUSPENSION", "FrontAntiSwaySetting", "20 7F C7 58 D5", Layout{Byte}, "FrontAntiSwaySetting={byte}"),
	def("SUSPENSION", "FrontAntiSwayRate", "24 2E 06 8D A5 A2", Layout{Float32, Float32}, "FrontAntiSwayRate=(f,f)"),
	def("SUSPENSION", "RearAntiSwayRange", "24 66 00 1E 25 A3 00", Layout{Float32, Float32, Byte}, "RearAntiSwayRange=(f,f,b)"),
	def("SUSPENSION", "RearAntiSwaySetting", "20 04 78 E9 91", Layout{Byte}, "RearAntiSwaySetting={byte}"),
	def("SUSPENSION", "RearAntiSwayRate", "24 50 E0 77 73 A2", Layout{Float32, Float32}, "RearAntiSwayRate=(f,f)"),
	def("SUSPENSION", "FrontToeInRange", "24 69 D4 9B 3B A3 00", Layout{Float32, Float32, Byte}, "FrontToeInRange=(f,f,b)"),
	def("SUSPENSION", "FrontToeInSetting", "20 C3 36 57 CC", Layout{Byte}, "FrontToeInSetting={byte}"),
	def("SUSPENSION", "RearToeInRange", "24 55 C9 EA 65 A3 00", Layout{Float32, Float32, Byte}, "RearToeInRange=(f,f,b)"),
	def("SUSPENSION", "RearToeInSetting", "20 FD F7 43 4F", Layout{Byte}, "RearToeInSetting={byte}"),
	def("SUSPENSION", "LeftCasterRange", "24 1A 73 FE 3E A3 00", Layout{Float32, Float32, Byte}, "LeftCasterRange=(f,f,b)"),
	def("SUSPENSION", "LeftCasterSetting", "20 FF D7 A7 D9", Layout{Byte}, "LeftCasterSetting={byte}"),
	def("SUSPENSION", "RightCasterRange", "24 33 76 33 73 A3 00", Layout{Float32, Float32, Byte}, "RightCasterRange=(f,f,b)"),
	def("SUSPENSION", "RightCasterSetting", "20 A6 B8 E3 8F", Layout{Byte}, "RightCasterSetting={byte}"),

	// CONTROLS
	def("CONTROLS", "SteeringFFBMult", "22 24 F5 34 B3", Layout{Float32}, "SteeringFFBMult={float}"),
	def("CONTROLS", "FFBGripMulti", "22 FB 38 19 1C", Layout{Float32}, "FFBGripMulti={float}"),
	def("CONTROLS", "SteeringRatioRange", "24 6B 4E A0 77 A3 00", Layout{Float32, Float32, Byte}, "SteeringRatioRange=(f,f,b)"),
	def("CONTROLS", "SteeringRatioSetting", "20 0F 6A B7 B6", Layout{Byte}, "SteeringRatioSetting={byte}"),
	def("CONTROLS", "CDF_UNKN_006", "22 27 A0 D3 AC", Layout{Float32}, "CDF_UNKN_006={float}"),
	def("CONTROLS", "CDF_UNKN_007", "20 31 7B 74 DC", Layout{Byte}, "CDF_UNKN_007={byte}"),
	def("CONTROLS", "CDF_UNKN_008", "22 E8 09 B9 01", Layout{Float32}, "CDF_UNKN_008={float}"),
	def("CONTROLS", "CDF_UNKN_011", "22 20 D5 05 AC", Layout{Float32}, "CDF_UNKN_011={float}"),
	def("CONTROLS", "CDF_UNKN_012", "22 48 E1 7A 3F", Layout{Float32}, "CDF_UNKN_012={float}"),
	def("CONTROLS", "UpshiftAlgorithm", "24 E0 D9 C8 5B 22", Layout{Float32, Byte}, "UpshiftAlgorithm=(f,b)"),
	def("CONTROLS", "DownshiftAlgorithm", "24 A6 8D 9C E2 A3 02", Layout{Float32, Float32, Float32}, "DownshiftAlgorithm=(f,f,f)"),
	def("CONTROLS", "SteeringLockRange", "24 30 43 CE 21 23 00", Layout{Float32, Byte, Byte}, "SteeringLockRange=(f,b,b)"),
	def("CONTROLS", "SteeringLockSetting", "28 B7 C2 C5 7E", nil, "SteeringLockSetting=default"),
	def("CONTROLS", "Unkn_0x2205CF7B77", "22 05 CF 7B 77", Layout{Float32}, "Unkn_0x2205CF7B77={float}"),
	def("CONTROLS", "Unkn_0x2252FA3411", "22 52 FA 34 11", Layout{Float32}, "Unkn_0x2252FA3411={float}"),
	def("CONTROLS", "RearBrakeRange", "24 A6 32 13 57 83 00", Layout{Byte, Float32, Byte}, "RearBrakeRange=(b,f,b)"),
	def("CONTROLS", "RearBrakeSetting", "20 FD BA 64 73", Layout{Byte}, "RearBrakeSetting={byte}"),
	def("CONTROLS", "BrakePressureRange", "24 D0 00 38 59 A3 00", Layout{Float32, Float32, Byte}, "BrakePressureRange=(f,f,b)"),
	def("CONTROLS", "BrakePressureSetting", "20 DA BD B9 81", Layout{Byte}, "BrakePressureSetting={byte}"),
	def("CONTROLS", "HandbrakeRange", "24 96 4B 29 B4 83 00", Layout{Byte, Float32, Byte}, "HandbrakeRange=(b,f,b)"),
	def("CONTROLS", "HandbrakePressSetting", "20 52 30 1F D2", Layout{Byte}, "HandbrakePressSetting={byte}"),
	def("CONTROLS", "AutoUpshiftGripThresh", "22 E3 5A 1D CA", Layout{Float32}, "AutoUpshiftGripThresh={float}"),
	def("CONTROLS", "AutoDownshiftGripThresh", "22 33 DE 0B C9", Layout{Float32}, "AutoDownshiftGripThresh={float}"),
	def("CONTROLS", "TractionControlGrip", "24 07 F7 6E 47 A2", Layout{Float32, Float32}, "TractionControlGrip=(f,f)"),
	def("CONTROLS", "TractionControlLevel", "24 25 5A FB 23 A2", Layout{Float32, Float32}, "TractionControlLevel=(f,f)"),
	def("CONTROLS", "ABSStrengthRange", "24 24 9E 03 13 83 00", Layout{Byte, Float32, Byte}, "ABSStrengthRange=(b,f,b)"),
	def("CONTROLS", "ABSStrengthSetting", "20 B2 BE 8E 7E", Layout{Byte}, "ABSStrengthSetting={byte}"),
	def("CONTROLS", "CDF_UNKN_016", "20 FA CE 76 12", Layout{Byte}, "CDF_UNKN_016={byte}"),
	def("CONTROLS", "CDF_UNKN_017", "20 D5 DD 9C 9B", Layout{Byte}, "CDF_UNKN_017={byte}"),
	def("CONTROLS", "CDF_UNKN_018", "20 5B D1 F7 C8", Layout{Byte}, "CDF_UNKN_018={byte}"),
	def("CONTROLS", "CDF_UNKN_019", "24 64 70 F5 FD 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_019=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_020", "20 34 76 EE E3", Layout{Byte}, "CDF_UNKN_020={byte}"),
	def("CONTROLS", "CDF_UNKN_021", "24 C8 1B AC AF 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_021=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_022", "20 61 5A 10 D6", Layout{Byte}, "CDF_UNKN_022={byte}"),
	def("CONTROLS", "CDF_UNKN_023", "24 D2 2F 18 AF 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_023=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_024", "20 4D CA 34 17", Layout{Byte}, "CDF_UNKN_024={byte}"),
	def("CONTROLS", "CDF_UNKN_025", "24 B3 85 4E E0 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_025=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_026", "20 6C E5 6E 1B", Layout{Byte}, "CDF_UNKN_026={byte}"),
	def("CONTROLS", "CDF_UNKN_027", "24 72 DE E1 17 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_027=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_028", "20 99 3F 2A 3F", Layout{Byte}, "CDF_UNKN_028={byte}"),
	def("CONTROLS", "CDF_UNKN_029", "24 5A AE 27 42 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_029=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_030", "20 25 F7 FA 9E", Layout{Byte}, "CDF_UNKN_030={byte}"),
	def("CONTROLS", "CDF_UNKN_031", "24 7A 49 7E 24 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_031=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_031_Setting", "28 99 85 60 E9", nil, "CDF_UNKN_031_Setting=default"),
	def("CONTROLS", "CDF_UNKN_032", "24 25 8E 3F 20 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_032=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_032_Setting", "28 3C 50 F8 D7", nil, "CDF_UNKN_032_Setting=default"),
	def("CONTROLS", "CDF_UNKN_033", "24 6A 7D 42 63 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_033=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_033_Setting", "28 A9 F7 13 BD", nil, "CDF_UNKN_033_Setting=default"),
	def("CONTROLS", "CDF_UNKN_034", "24 98 CA 4E 61 03 02", Layout{Byte, Byte, Byte}, "CDF_UNKN_034=(b,b,b)"),
	def("CONTROLS", "CDF_UNKN_034_Setting", "20 77 E8 4F 5C", Layout{Byte}, "CDF_UNKN_034_Setting={byte}"),
	def("CONTROLS", "CDF_UNKN_035", "24 09 DE B7 68 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_035=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_035_Setting", "28 FF 26 A3 2B", nil, "CDF_UNKN_035_Setting=default"),
	def("CONTROLS", "CDF_UNKN_036", "24 4B D5 82 72 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_036=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_036_Setting", "28 E5 12 C1 5D", nil, "CDF_UNKN_036_Setting=default"),
	def("CONTROLS", "CDF_UNKN_037", "24 22 AC 0C 3A 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_037=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_037_Setting", "20 17 7A 98 F5", Layout{Byte}, "CDF_UNKN_037_Setting={byte}"),
	def("CONTROLS", "CDF_UNKN_039", "24 9F C7 1E D1 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_039=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_040", "20 C7 D5 99 C6", Layout{Byte}, "CDF_UNKN_040={byte}"),
	def("CONTROLS", "CDF_UNKN_041", "24 67 8C A5 99 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_041=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_041_Setting", "28 BE A1 5C E1", nil, "CDF_UNKN_041_Setting=default"),
	def("CONTROLS", "CDF_UNKN_042", "24 8E 47 3C 20 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_042=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_042_Setting", "28 ED 5F B5 79", nil, "CDF_UNKN_042_Setting=default"),
	def("CONTROLS", "CDF_UNKN_043", "24 23 F0 43 98 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_043=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_043_Setting", "28 CA E1 FE 39", nil, "CDF_UNKN_043_Setting=default"),
	def("CONTROLS", "CDF_UNKN_044", "24 E7 6C F5 65 83 02", Layout{Byte, Float32, Float32}, "CDF_UNKN_044=(b,f,f)"),
	def("CONTROLS", "CDF_UNKN_044_Setting", "28 31 6F DC CC", nil, "CDF_UNKN_044_Setting=default"),

	// DRIVELINE
	def("DRIVELINE", "ClutchEngageRate", "22 1B CA 33 55", Layout{Float32}, "ClutchEngageRate={float}"),
	def("DRIVELINE", "ClutchInertia", "22 D3 1C F6 C6", Layout{Float32}, "ClutchInertia={float}"),
	def("DRIVELINE", "ClutchTorque", "22 2E 33 DB 70", Layout{Float32}, "ClutchTorque={float}"),
	def("DRIVELINE", "ClutchFriction", "22 9B 56 A1 18", Layout{Float32}, "ClutchFriction={float}"),
	def("DRIVELINE", "BaulkTorque", "22 36 6E 87 07", Layout{Float32}, "BaulkTorque={float}"),
	def("DRIVELINE", "SemiAutomatic", "20 1D EA 4C 3D", Layout{Byte}, "SemiAutomatic={byte}"),
	def("DRIVELINE", "CDF_UNKN_046", "20 74 73 B2 00", Layout{Byte}, "CDF_UNKN_046={byte}"),
	def("DRIVELINE", "CDF_UNKN_047", "20 B5 19 EF 5C", Layout{Byte}, "CDF_UNKN_047={byte}"),
	def("DRIVELINE", "UpshiftDelay", "22 67 F7 AD 20", Layout{Float32}, "UpshiftDelay={float}"),
	def("DRIVELINE", "UpshiftClutchTime", "22 9D 78 9E C9", Layout{Float32}, "UpshiftClutchTime={float}"),
	def("DRIVELINE", "DownshiftDelay", "22 07 50 AF 26", Layout{Float32}, "DownshiftDelay={float}"),
	def("DRIVELINE", "DownshiftClutchTime", "22 DB 0B FC 09", Layout{Float32}, "DownshiftClutchTime={float}"),
	def("DRIVELINE", "DownshiftBlipThrottle", "22 3B 62 D3 1C", Layout{Float32}, "DownshiftBlipThrottle={float}"),
	def("DRIVELINE", "FinalDriveSetting", "20 C1 EB DC 28", Layout{Byte}, "FinalDriveSetting={byte}"),
	def("DRIVELINE", "ReverseGearSetting", "28 D6 71 85 B0", nil, "ReverseGearSetting=default"),
	def("DRIVELINE", "ForwardGears", "20 FF 0C 22 07", Layout{Byte}, "ForwardGears={byte}"),
	def("DRIVELINE", "GearOneSetting", "28 F4 CC 2F 1D", nil, "GearOneSetting=default"),
	def("DRIVELINE", "GearTwoSetting", "20 8D 69 C2 DA", Layout{Byte}, "GearTwoSetting={byte}"),
	def("DRIVELINE", "GearThreeSetting", "20 C0 25 93 C3", Layout{Byte}, "GearThreeSetting={byte}"),
	def("DRIVELINE", "GearFourSetting", "20 78 92 B7 5A", Layout{Byte}, "GearFourSetting={byte}"),
	def("DRIVELINE", "GearFiveSetting", "20 78 4E 48 36", Layout{Byte}, "GearFiveSetting={byte}"),
	def("DRIVELINE", "GearSixSetting", "20 5F 2B A9 EE", Layout{Byte}, "GearSixSetting={byte}"),
}

func def(section, name, marker string, layout Layout, notes ...string) FieldDef {
	d := FieldDef{Section: section, Name: name, Marker: hx(marker), Layout: layout}
	if len(notes) > 0 {
		d.Notes = notes[0]
	}
	return d
}
