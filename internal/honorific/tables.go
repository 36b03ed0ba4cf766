// Package honorific recognizes and canonicalizes prefix and postfix
// honorific titles ("Dr.", "Lt. Col.", "Ph.D.", "Esq.", ...).
package honorific

// prefixHonorifics maps a namecased honorific word to its canonical
// printed form. Entries mostly come from a large closed set of titles
// of address, military/clergy/academic rank, and similar prefix words.
var prefixHonorifics = map[string]string{
	"Aunt": "Aunt",
	"Auntie": "Auntie",
	"Attaché": "Attaché",
	"Dame": "Dame",
	"Marchioness": "Marchioness",
	"Marquess": "Marquess",
	"Marquis": "Marquis",
	"Marquise": "Marquise",
	"King": "King",
	"King'S": "King's",
	"Queen": "Queen",
	"Queen'S": "Queen's",
	"Abbess": "Abbess",
	"Abbot": "Abbot",
	"Acad": "Acad.",
	"Academic": "Acad.",
	"Academian": "Acad.",
	"Acolyte": "Acolyte",
	"Adept": "Adept",
	"Adjutant": "Adjutant",
	"Adm": "Adm.",
	"Admiral": "Adm.",
	"Administrative": "Adm.",
	"Administrator": "Adm.",
	"Administrater": "Adm.",
	"Admin": "Adm.",
	"Advocate": "Advocate",
	"Akhoond": "Akhoond",
	"Air": "Air",
	"Amn": "Amn.",
	"Airman": "Amn.",
	"Ald": "Ald.",
	"Alderman": "Ald.",
	"Almoner": "Almoner",
	"Ambassador": "Amb.",
	"Amb": "Amb.",
	"Analytics": "Analytics",
	"Appellate": "Appellate",
	"Apprentice": "Apprentice",
	"Arbitrator": "Arbitrator",
	"Archbishop": "Archbishop",
	"Archdeacon": "Archdeacon",
	"Archdruid": "Archdruid",
	"Archduchess": "Archduchess",
	"Archduke": "Archduke",
	"Arhat": "Arhat",
	"As": "Asst.",
	"Assistant": "Asst.",
	"Assoc": "Assoc.",
	"Associate": "Assoc.",
	"Asst": "Asst.",
	"Attache": "Attache",
	"Attorney": "Attorney",
	"Ayatollah": "Ayatollah",
	"Baba": "Baba",
	"Bachelor": "Bachelor",
	"Baccalaureus": "Baccalaureus",
	"Bailiff": "Bailiff",
	"Banner": "Banner",
	"Bard": "Bard",
	"Baron": "Baron",
	"Barrister": "Barrister",
	"Bearer": "Bearer",
	"Bench": "Bench",
	"Bgen": "Brig. Gen.",
	"Bishop": "Bishop",
	"Blessed": "Blessed",
	"Bodhisattva": "Bodhisattva",
	"Brig": "Brig.",
	"Brigadier": "Brig.",
	"Briggen": "Briggen",
	"Brother": "Br.",
	"Br": "Br.",
	"Buddha": "Buddha",
	"Burgess": "Burgess",
	"Business": "Business",
	"Bwana": "Bwana",
	"Canon": "Canon",
	"Capt": "Capt.",
	"Captain": "Capt.",
	"Cardinal": "Cardinal",
	"Chargé": "Chargé",
	"Catholicos": "Catholicos",
	"Ccmsgt": "CCM",
	"Cdr": "Cdr.",
	"Ceo": "CEO",
	"Cfo": "CFO",
	"Chair": "Chair",
	"Chairs": "Chairs",
	"Chancellor": "Chancellor",
	"Chaplain": "Chaplain",
	"Chief": "Chief",
	"Chieftain": "Chieftain",
	"Civil": "Civil",
	"Clerk": "Clerk",
	"Cmd": "Cmd.",
	"Cmdr": "Cmdr.",
	"Cmsaf": "CMSAF",
	"Cmsgt": "CMSgt",
	"Co-Chair": "Co-Chair",
	"Co-Chairs": "Co-Chairs",
	"Coach": "Coach",
	"Col": "Col.",
	"Colonel": "Col.",
	"Commander": "Cmdr.",
	"Commander-In-Chief": "Commander-In-Chief",
	"Commodore": "Commodore",
	"Comptroller": "Comptroller",
	"Controller": "Controller",
	"Corporal": "Cpl.",
	"Corporate": "Corporate",
	"Councillor": "Councillor",
	"Count": "Count",
	"Countess": "Countess",
	"Courtier": "Courtier",
	"Cpl": "Cpl.",
	"Cpo": "CPO",
	"Cpt": "Capt.",
	"Credit": "Credit",
	"Criminal": "Criminal",
	"Csm": "CSM",
	"Curator": "Curator",
	"Customs": "Customs",
	"Cwo": "CWO",
	"D'Affaires": "D'Affaires",
	"Deacon": "Deacon",
	"Delegate": "Delegate",
	"Deputy": "Deputy",
	"Designated": "Designated",
	"Det": "Det.",
	"Detective": "Det.",
	"Dir": "Dir.",
	"Director": "Dir.",
	"Discovery": "Discovery",
	"District": "District",
	"Division": "Division",
	"Docent": "Docent",
	"Docket": "Docket",
	"Doctor": "Dr.",
	"Doc": "Dr.",
	"Doyen": "Doyen",
	"Dpty": "Deputy",
	"Druid": "Druid",
	"Duke": "Duke",
	"Duchess": "Duchess",
	"Edmi": "Edmi",
	"Edohen": "Edohen",
	"Effendi": "Effendi",
	"Ekegbian": "Ekegbian",
	"Elder": "Elder",
	"Elerunwon": "Elerunwon",
	"Emperor": "Emperor",
	"Empress": "Empress",
	"Engineer": "Eng.",
	"Ens": "Ens.",
	"Ensign": "Ensign",
	"Envoy": "Envoy",
	"Exec": "Exec.",
	"Executive": "Exec.",
	"Fadm": "FADM",
	"Family": "Family",
	"Father": "Fr.",
	"Fr": "Fr.",
	"Federal": "Federal",
	"Field": "Field",
	"Financial": "Financial",
	"First": "First",
	"Flag": "Flag",
	"Flying": "Flying",
	"Flight": "Flt.",
	"Flt": "Flt.",
	"Foreign": "Foreign",
	"Forester": "Forester",
	"Frau": "Frau",
	"Friar": "Friar",
	"Gen": "Gen.",
	"General": "Gen.",
	"Generalissimo": "Gen.",
	"Gentiluomo": "Gentiluomo",
	"Giani": "Giani",
	"Goodman": "Goodman",
	"Goodwife": "Goodwife",
	"Gov": "Gov.",
	"Governer": "Gov.",
	"Governor": "Gov.",
	"Grand": "Grand",
	"Group": "Group",
	"Guru": "Guru",
	"Gyani": "Gyani",
	"Gysgt": "GySgt",
	"Hajji": "Hajji",
	"Headman": "Headman",
	"Her": "Her",
	"Herr": "Herr",
	"Hereditary": "Hereditary",
	"High": "High",
	"His": "His",
	"Hon": "Hon.",
	"Honorable": "Hon.",
	"Honourable": "Hon.",
	"Imam": "Imam",
	"Information": "Information",
	"Insp": "Insp.",
	"Inspector": "Insp.",
	"Intelligence": "Intelligence",
	"Intendant": "Intendant",
	"Journeyman": "Journeyman",
	"Judge": "Judge",
	"Judicial": "Judicial",
	"Justice": "Justice",
	"Junior": "Jr.",
	"Jr": "Jr.",
	"Kingdom": "Kingdom",
	"Knowledge": "Knowledge",
	"Lady": "Lady",
	"Lama": "Lama",
	"Lamido": "Lamido",
	"Law": "Law",
	"Lcdr": "LCDR",
	"Lcpl": "LCpl",
	"Leader": "Leader",
	"Lieutenant": "Lt.",
	"Lord": "Lord",
	"Leut": "Lt.",
	"Lieut": "Lt.",
	"Ltc": "Lt. Col.",
	"Ltcol": "Lt. Col.",
	"Ltg": "Lt. Gen.",
	"Ltgen": "Lt. Gen.",
	"Ltjg": "LTJG",
	"Madam": "Madam",
	"Madame": "Mme.",
	"Mag": "Mag.",
	"Mag-Judge": "Magistrate Judge",
	"Mag/Judge": "Magistrate udge",
	"Magistrate": "Magistrate",
	"Magistrate-Judge": "Magistrate Judge",
	"Maharajah": "Maharajah",
	"Maharani": "Maharani",
	"Mahdi": "Mahdi",
	"Maid": "Maid",
	"Maj": "Maj.",
	"Majesty": "Majesty",
	"Majgen": "Maj. Gen.",
	"Major": "Maj.",
	"Manager": "Mgr.",
	"Marcher": "Marcher",
	"Marketing": "Marketing",
	"Marshal": "Marshal",
	"Master": "Mr.",
	"Matriarch": "Matriarch",
	"Matron": "Matron",
	"Mayor": "Mayor",
	"Mcpo": "MCPO",
	"Mcpoc": "MCPOC",
	"Mcpon": "MCPON",
	"Member": "Member",
	"Metropolitan": "Metropolitan",
	"Mgr": "Mgr.",
	"Mgysgt": "MGySgt",
	"Minister": "Minister",
	"Miss": "Ms.",
	"Misses": "Misses",
	"Mister": "Mr.",
	"Mme": "Mme.",
	"Monsignor": "Msgr.",
	"Most": "Most",
	"Mother": "Mother",
	"Mpco-Cg": "MCPOCG",
	"Mrs": "Mrs.",
	"Missus": "Mrs.",
	"Msg": "MSG",
	"Msgr": "Msgr.",
	"Msgt": "MSgt",
	"Mufti": "Mufti",
	"Mullah": "Mullah",
	"Municipal": "Municipal",
	"Murshid": "Murshid",
	"Mx": "Mx.",
	"Mz": "Mz.",
	"Nanny": "Nanny",
	"National": "National",
	"Nurse": "Nurse",
	"Officer": "Ofc.",
	"Ofc": "Ofc.",
	"Operating": "Operating",
	"Pastor": "Pastor",
	"Patriarch": "Patriarch",
	"Petty": "Petty",
	"Pfc": "PFC",
	"Pharaoh": "Pharaoh",
	"Pilot": "Pilot",
	"Pir": "Pir",
	"Police": "Police",
	"Political": "Political",
	"Pope": "Pope",
	"Prefect": "Prefect",
	"Prelate": "Prelate",
	"Premier": "Premier",
	"Pres": "Pres.",
	"Presbyter": "Presbyter",
	"President": "Pres.",
	"Presiding": "Presiding",
	"Priest": "Priest",
	"Priestess": "Priestess",
	"Primate": "Primate",
	"Prime": "Prime",
	"Prin": "Prin.",
	"Prince": "Prince",
	"Princess": "Princess",
	"Principal": "Prin.",
	"Prior": "Prior",
	"Private": "Pvt.",
	"Pro": "Pro",
	"Prof": "Prof.",
	"Professor": "Prof.",
	"Provost": "Provost",
	"Pte": "Pte.",
	"Pursuivant": "Pursuivant",
	"Pvt": "Pvt.",
	"Rabbi": "Rabbi",
	"Radm": "RADM",
	"Rangatira": "Rangatira",
	"Ranger": "Ranger",
	"Rdml": "RDML",
	"Rear": "Rear",
	"Rebbe": "Rebbe",
	"Registrar": "Registrar",
	"Rep": "Rep.",
	"Representative": "Rep.",
	"Resident": "Resident",
	"Rev": "Rev.",
	"Revenue": "Revenue",
	"Reverend": "Rev.",
	"Reverand": "Rev.",
	"Revd": "Rev.",
	"Rev'D": "Rev.",
	"Right": "Right",
	"Risk": "Risk",
	"Royal": "Royal",
	"Saint": "Saint",
	"Sargent": "Sgt.",
	"Sargeant": "Sgt.",
	"Saoshyant": "Saoshyant",
	"Scpo": "SCPO",
	"Secretary": "Sec.",
	"Sec": "Sec.",
	"Security": "Security",
	"Seigneur": "Seigneur",
	"Senator": "Sen.",
	"Sen": "Sen.",
	"Senior": "Senior",
	"Senior-Judge": "Senior-Judge",
	"Sergeant": "Sgt.",
	"Servant": "Servant",
	"Sfc": "SFC",
	"Sgm": "SGM",
	"Sgt": "Sgt.",
	"Sgtmaj": "SGM",
	"Sgtmajmc": "SMMC",
	"Shehu": "Shehu",
	"Sheikh": "Sheikh",
	"Sheriff": "Sheriff",
	"Siddha": "Siddha",
	"Sir": "Sir",
	"Sister": "Sr.",
	"Sr": "Sr.",
	"Sma": "SMA",
	"Smsgt": "SMSgt",
	"Solicitor": "Solicitor",
	"Spc": "SPC",
	"Speaker": "Speaker",
	"Special": "Special",
	"Specialist": "Specialist",
	"Sra": "SrA",
	"Ssg": "SSG",
	"Ssgt": "SSgt",
	"Staff": "Staff",
	"State": "State",
	"States": "States",
	"Strategy": "Strategy",
	"Subaltern": "Subaltern",
	"Subedar": "Subedar",
	"Sultan": "Sultan",
	"Sultana": "Sultana",
	"Superior": "Superior",
	"Superintendent": "Supt.",
	"Supt": "Supt.",
	"Supreme": "Supreme",
	"Surgeon": "Surgeon",
	"Swordbearer": "Swordbearer",
	"Sysselmann": "Sysselmann",
	"Tax": "Tax",
	"Technical": "Technical",
	"Timi": "Timi",
	"Tirthankar": "Tirthankar",
	"Treasurer": "Treas.",
	"Treas": "Treas.",
	"Tsar": "Tsar",
	"Tsarina": "Tsarina",
	"Tsgt": "TSgt",
	"Uncle": "Uncle",
	"United": "United",
	"Vadm": "VAdm",
	"Vardapet": "Vardapet",
	"Venerable": "Venerable",
	"Verderer": "Verderer",
	"Very": "Very",
	"Vicar": "Vicar",
	"Vice": "Vice",
	"Viscount": "Viscount",
	"Vizier": "Vizier",
	"Warden": "Warden",
	"Warrant": "Warrant",
	"Wing": "Wing",
	"Woodman": "Woodman",
	"Icdr": "ICDr.",
	"Judr": "JUDr.",
	"Mddr": "MDDr.",
	"Bca": "BcA.",
	"Mga": "MgA.",
	"Md": "M.D.",
	"Dvm": "DVM",
	"Paeddr": "PaedDr.",
	"Pharmdr": "PharmDr.",
	"Phdr": "PhDr.",
	"Phmr": "PhMr.",
	"Rcdr": "RCDr.",
	"Rndr": "RNDr.",
	"Dsc": "DSc.",
	"Rsdr": "RSDr.",
	"Rtdr": "RTDr.",
	"Thdr": "ThDr.",
	"Thd": "Th.D.",
	"Phd": "Ph.D.",
	"Thlic": "ThLic.",
	"Thmgr": "ThMgr.",
	"Artd": "ArtD.",
	"Dis": "DiS.",
	"And": "and",
	"The": "The",
	"Und": "und",
}
// postfixHonorifics maps a namecased post-nominal honorific or
// professional designation to its canonical printed form.
var postfixHonorifics = map[string]string{
	"Esq": "Esq.",
	"Esquire": "Esq.",
	"Attorney-at-law": "Attorney-at-law",
	"Msc": "M.Sc",
	"Bcompt": "BCompt",
	"Phd": "Ph.D.",
	"Rph": "RPh",
	"Chb": "ChB",
	"Freng": "FREng",
	"Meng": "M.Eng",
	"Bgdipbus": "BGDipBus",
	"Dip": "Dip",
	"Diplphys": "Dipl.Phys",
	"Mhsc": "M.H.Sc.",
	"Bcomm": "B.Comm",
	"Beng": "B.Eng",
	"Bacc": "B.Acc",
	"Mtech": "M.Tech",
	"Bec": "B.Ec",
	"Capom": "CAP-OM",
	"Peng": "P.Eng",
	"Bch": "BCh",
	"Mbbchir": "MBBChir",
	"Mbchba": "MBChBa",
	"Mphil": "MPhil",
	"Lld": "LL.D",
	"Dlit": "D.Lit",
	"Dclinpsy": "DClinPsy",
	"Dsc": "DSc",
	"Mres": "M.Res",
	"Psyd": "Psy.D",
	"Pharmd": "Pharm.D",
	"Bacom": "BACom",
	"Badmin": "BAdmin",
	"Baecon": "BAEcon",
	"Bagr": "BAgr",
	"Balaw": "BALaw",
	"Bappsc": "BAppSc",
	"Barch": "BArch",
	"Barchsc": "BArchSc",
	"Barelst": "BARelSt",
	"Basc": "BASc",
	"Basoc": "BASoc",
	"Batheol": "BATheol",
	"Bbus": "BBus",
	"Bchem": "BChem",
	"Bclinsci": "BClinSci",
	"Bcombst": "BCombSt",
	"Bcommedcommdev": "BCommEdCommDev",
	"Bcomp": "BComp",
	"Bcomsc": "BComSc",
	"Bcoun": "BCoun",
	"Bdes": "BDes",
	"Becon": "BEcon",
	"Beconfin": "BEcon&Fin",
	"Beconsci": "BEconSci",
	"Bed": "BEd",
	"Bfin": "BFin",
	"Bhealthsc": "BHealthSc",
	"Bhsc": "BHSc",
	"Bhy": "BHy",
	"Bjur": "BJur",
	"Blegsc": "BLegSc",
	"Blib": "BLib",
	"Bling": "BLing",
	"Blitt": "BLitt",
	"Blittcelt": "BLittCelt",
	"Bmedsc": "BMedSc",
	"Bmet": "BMet",
	"Bmid": "BMid",
	"Bmin": "BMin",
	"Bmsc": "BMSc",
	"Bmus": "BMus",
	"Bmused": "BMusEd",
	"Bmusperf": "BMusPerf",
	"Bnurs": "BNurs",
	"Boptom": "BOptom",
	"Bpharm": "BPharm",
	"Bphil": "BPhil",
	"Tchg": "Tchg",
	"Med": "MEd",
	"Bachelor": "Bachelor",
	"Ceng": "C.Eng",
	"Bphys": "BPhys",
	"Bphysio": "BPhysio",
	"Bpl": "BPl",
	"Bradiog": "BRadiog",
	"Bsc": "B.Sc",
	"Bscagr": "BScAgr",
	"Bscec": "BScEc",
	"Bscecon": "BScEcon",
	"Bscfor": "BScFor",
	"Bsocsc": "BSocSc",
	"Bstsu": "BStSu",
	"Btchg": "BTchg",
	"Btech": "BTech",
	"Bteched": "BTechEd",
	"Bth": "BTh",
	"Btheol": "BTheol",
	"Edb": "EdB",
	"Littb": "LittB",
	"Musb": "MusB",
	"Scbtech": "ScBTech",
	"Cfa": "CFA",
	"Llb": "LL.B",
	"Llm": "LL.M",
	"Solicitor": "Solicitor",
	"Cenv": "CEnv",
	"Bcom": "B.Com",
	"Mec": "MEc",
	"Hdip": "HDip",
	"Et": "et",
	"Al": "al.",
}